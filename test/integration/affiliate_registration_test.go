package integration

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/repository/unitofwork"
	"affiliate-hub-be/pkg/database"
	"affiliate-hub-be/pkg/referral"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Two open registrations for the same user must be impossible at the database
// level; the pre-insert lookup alone cannot stop two concurrent requests.
func TestAffiliateOpenRegistrationUnique(t *testing.T) {
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

	generateCode, err := referral.NewGenerator()
	if err != nil {
		t.Fatalf("Failed to build referral code generator: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	userId := uuid.New()
	payment := entity.PaymentDetails{
		Method:        entity.PaymentMethodBank,
		AccountName:   "Integration Test",
		AccountNumber: "0000000000",
		BankName:      "Test Bank",
	}

	first := &entity.Affiliate{
		Id:           uuid.New(),
		UserId:       userId,
		Status:       entity.AffiliateStatusPending,
		ReferralCode: generateCode(),
		Payment:      payment,
	}
	if err := uow.AffiliateRepository().Create(ctx, first); err != nil {
		t.Fatalf("Failed to create first registration: %v", err)
	}
	defer uow.AffiliateRepository().Delete(ctx, first.Id)

	second := &entity.Affiliate{
		Id:           uuid.New(),
		UserId:       userId,
		Status:       entity.AffiliateStatusPending,
		ReferralCode: generateCode(),
		Payment:      payment,
	}
	err = uow.AffiliateRepository().Create(ctx, second)
	if err == nil {
		uow.AffiliateRepository().Delete(ctx, second.Id)
		t.Fatal("Second open registration for the same user was accepted")
	}
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "expected duplicated key, got: %v", err)

	// A rejected row is history and must not block a fresh application.
	rejected := &entity.Affiliate{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		Status:       entity.AffiliateStatusRejected,
		ReferralCode: generateCode(),
		Payment:      payment,
	}
	if err := uow.AffiliateRepository().Create(ctx, rejected); err != nil {
		t.Fatalf("Failed to create rejected row: %v", err)
	}
	defer uow.AffiliateRepository().Delete(ctx, rejected.Id)

	reapply := &entity.Affiliate{
		Id:           uuid.New(),
		UserId:       rejected.UserId,
		Status:       entity.AffiliateStatusPending,
		ReferralCode: generateCode(),
		Payment:      payment,
	}
	if err := uow.AffiliateRepository().Create(ctx, reapply); err != nil {
		t.Fatalf("Re-application after rejection was blocked: %v", err)
	}
	defer uow.AffiliateRepository().Delete(ctx, reapply.Id)
}
