package main

import (
	"log"
	"os"

	"affiliate-hub-be/internal/model"
	"affiliate-hub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	color.Cyan("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Cyan("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Affiliate{},
		&model.Coupon{},
		&model.CouponRedemption{},
		&model.CommissionEntry{},
		&model.WithdrawRequest{},
		&model.ProgramSetting{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration: partial indexes GORM tags cannot express. One live
	// registration per user; rejected rows are history and do not count.
	color.Cyan("Step 3: Creating partial indexes...")

	postSQL := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_affiliates_open_user
			ON affiliates (user_id)
			WHERE status IN ('pending', 'active', 'suspended');`,
	}

	for _, sql := range postSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Error: Failed to create partial index: %v", err)
			os.Exit(1)
		}
	}

	// 6. Seed: program settings singleton and the initial admin account.
	color.Cyan("Step 4: Seeding defaults...")

	var settingCount int64
	db.Model(&model.ProgramSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := model.ProgramSetting{
			Id:              1,
			CommissionRate:  5.0,
			MinimumWithdraw: 50.0,
		}
		if err := db.Create(&setting).Error; err != nil {
			color.Yellow("Warn: Failed to seed program settings: %v", err)
		} else {
			color.Green("Seeded program settings (rate 5%%, min withdraw 50)")
		}
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		var adminCount int64
		db.Model(&model.User{}).Where("email = ?", adminEmail).Count(&adminCount)
		if adminCount == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				color.Red("Error: Failed to hash admin password: %v", err)
				os.Exit(1)
			}
			hashStr := string(hash)
			admin := model.User{
				Id:           uuid.New(),
				Email:        adminEmail,
				PasswordHash: &hashStr,
				FullName:     "Administrator",
				Role:         "admin",
				Status:       "active",
			}
			if err := db.Create(&admin).Error; err != nil {
				color.Yellow("Warn: Failed to seed admin user: %v", err)
			} else {
				color.Green("Seeded admin user %s", adminEmail)
			}
		}
	} else {
		color.Yellow("Skipping admin seed: ADMIN_EMAIL / ADMIN_PASSWORD not set")
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
