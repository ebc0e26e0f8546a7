package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	"github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
	coremocks "github.com/masjid-digital/donation-processor/mocks/port/core"
	persistencemocks "github.com/masjid-digital/donation-processor/mocks/port/persistence"
)

const (
	testMinimumAmount = int64(10000)
	testCodeLength    = 8
)

// newQuietLogger returns a logger mock that tolerates any log calls. The
// tests assert behavior, not log output.
func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestIntakeCreate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	validRequest := func() usecase.CreateDonationRequest {
		return usecase.CreateDonationRequest{
			DonorName: "Ahmad Fulan",
			Amount:    50000,
			Category:  string(entity.CategoryInfaq),
		}
	}

	newIntake := func(
		donationRepo *persistencemocks.MockDonationRepository,
		paymentMethodRepo *persistencemocks.MockPaymentMethodRepository,
		codeGen *coremocks.MockCodeGenerator,
		timeProvider *coremocks.MockTimeProvider,
	) *Intake {
		return NewIntake(
			donationRepo,
			paymentMethodRepo,
			NewValidator(testMinimumAmount),
			codeGen,
			testCodeLength,
			timeProvider,
			newQuietLogger(t),
		)
	}

	t.Run("Successful creation", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		timeProvider.On("Now").Return(fixedTime)
		codeGen.On("NewCode", testCodeLength).Return("A1B2C3D4", nil).Once()
		donationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).Return(nil).Once()

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", donation.Code)
		assert.Equal(t, entity.StatusPending, donation.Status)
		assert.Equal(t, fixedTime, donation.CreatedAt)
	})

	t.Run("Validation failure skips persistence", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		req := validRequest()
		req.Amount = testMinimumAmount - 1

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, req)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrAmountBelowMinimum))
	})

	t.Run("Referenced payment method must exist", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		methodID := uuid.New()
		paymentMethodRepo.On("GetByID", ctx, methodID).Return(nil, errs.ErrPaymentMethodNotFound).Once()

		req := validRequest()
		req.PaymentMethodID = &methodID

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, req)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrPaymentMethodNotFound))
	})

	t.Run("Inactive payment method is still accepted", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		methodID := uuid.New()
		inactive := &entity.PaymentMethod{ID: methodID, Name: "Bank Lama", Type: entity.TypeBankTransfer, IsActive: false}
		paymentMethodRepo.On("GetByID", ctx, methodID).Return(inactive, nil).Once()
		timeProvider.On("Now").Return(fixedTime)
		codeGen.On("NewCode", testCodeLength).Return("Z9Y8X7W6", nil).Once()
		donationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).Return(nil).Once()

		req := validRequest()
		req.PaymentMethodID = &methodID

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, donation.PaymentMethodID)
		assert.Equal(t, methodID, *donation.PaymentMethodID)
	})

	t.Run("Code collision triggers regeneration", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		timeProvider.On("Now").Return(fixedTime)
		codeGen.On("NewCode", testCodeLength).Return("TAKEN123", nil).Once()
		codeGen.On("NewCode", testCodeLength).Return("FRESH456", nil).Once()
		donationRepo.On("Create", ctx, mock.MatchedBy(func(d *entity.Donation) bool {
			return d.Code == "TAKEN123"
		})).Return(errs.ErrCodeCollision).Once()
		donationRepo.On("Create", ctx, mock.MatchedBy(func(d *entity.Donation) bool {
			return d.Code == "FRESH456"
		})).Return(nil).Once()

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "FRESH456", donation.Code)
	})

	t.Run("Exhausted code attempts", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		timeProvider.On("Now").Return(fixedTime)
		codeGen.On("NewCode", testCodeLength).Return("SAMECODE", nil).Times(maxCodeAttempts)
		donationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).
			Return(errs.ErrCodeCollision).Times(maxCodeAttempts)

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, validRequest())

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrCodeCollision))
	})

	t.Run("Non-collision persistence error propagates immediately", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		timeProvider.On("Now").Return(fixedTime)
		codeGen.On("NewCode", testCodeLength).Return("A1B2C3D4", nil).Once()
		donationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).
			Return(errs.ErrDatabaseConnection).Once()

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, validRequest())

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})

	t.Run("Code generation failure", func(t *testing.T) {
		donationRepo := persistencemocks.NewMockDonationRepository(t)
		paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
		codeGen := coremocks.NewMockCodeGenerator(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		timeProvider.On("Now").Return(fixedTime)
		genErr := errors.New("entropy source unavailable")
		codeGen.On("NewCode", testCodeLength).Return("", genErr).Once()

		intake := newIntake(donationRepo, paymentMethodRepo, codeGen, timeProvider)
		donation, err := intake.Create(ctx, validRequest())

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, genErr))
	})
}
