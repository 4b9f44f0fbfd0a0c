package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"affiliate-hub-be/internal/repository/unitofwork"
	"affiliate-hub-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.AffiliateRepository())
	assert.NotNil(t, uow.CouponRepository())
	assert.NotNil(t, uow.CommissionRepository())
	assert.NotNil(t, uow.WithdrawRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Users in database: %d", count)
	})

	t.Run("Check Affiliate Repository", func(t *testing.T) {
		count, err := uow.AffiliateRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Affiliates in database: %d", count)
	})
}
