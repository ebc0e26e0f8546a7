package donation

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	coremocks "github.com/masjid-digital/donation-processor/mocks/port/core"
	persistencemocks "github.com/masjid-digital/donation-processor/mocks/port/persistence"
)

func newTestService(
	t *testing.T,
	uow *persistencemocks.MockUnitOfWork,
	donationRepo *persistencemocks.MockDonationRepository,
) *Service {
	paymentMethodRepo := persistencemocks.NewMockPaymentMethodRepository(t)
	codeGen := coremocks.NewMockCodeGenerator(t)
	timeProvider := coremocks.NewMockTimeProvider(t)

	return NewService(uow, donationRepo, paymentMethodRepo, codeGen, timeProvider, newQuietLogger(t), Config{
		MinimumAmount: testMinimumAmount,
		CodeLength:    testCodeLength,
		StatsMonths:   testStatsMonths,
	})
}

func TestServiceLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("Get by identifier", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		donationRepo := persistencemocks.NewMockDonationRepository(t)

		id := uuid.New()
		stored := &entity.Donation{ID: id, Code: "A1B2C3D4"}
		donationRepo.On("GetByID", ctx, id).Return(stored, nil).Once()

		service := newTestService(t, uow, donationRepo)
		donation, err := service.Get(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, stored, donation)
	})

	t.Run("Get by donor-facing code", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		donationRepo := persistencemocks.NewMockDonationRepository(t)

		stored := &entity.Donation{ID: uuid.New(), Code: "A1B2C3D4"}
		donationRepo.On("GetByCode", ctx, "A1B2C3D4").Return(stored, nil).Once()

		service := newTestService(t, uow, donationRepo)
		donation, err := service.GetByCode(ctx, "A1B2C3D4")

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", donation.Code)
	})

	t.Run("List passes the filter through", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		donationRepo := persistencemocks.NewMockDonationRepository(t)

		filter := persistence.DonationFilter{
			Status:   string(entity.StatusPending),
			Category: string(entity.CategoryInfaq),
			Limit:    20,
		}
		rows := []*entity.Donation{{ID: uuid.New()}, {ID: uuid.New()}}
		donationRepo.On("List", ctx, filter).Return(rows, int64(42), nil).Once()

		service := newTestService(t, uow, donationRepo)
		page, err := service.List(ctx, filter)

		require.NoError(t, err)
		assert.Len(t, page.Donations, 2)
		assert.Equal(t, int64(42), page.Total)
	})

	t.Run("List rejects unknown status before touching storage", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		donationRepo := persistencemocks.NewMockDonationRepository(t)

		service := newTestService(t, uow, donationRepo)
		page, err := service.List(ctx, persistence.DonationFilter{Status: "refunded"})

		assert.Nil(t, page)
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Nil", nil, http.StatusOK},
		{"Validation", errs.NewValidationError(errs.ErrAmountBelowMinimum, "amount"), http.StatusUnprocessableEntity},
		{"ValidationSentinel", errs.ErrInvalidCategory, http.StatusUnprocessableEntity},
		{"NotFound", errs.ErrDonationNotFound, http.StatusNotFound},
		{"PaymentMethodNotFound", errs.ErrPaymentMethodNotFound, http.StatusNotFound},
		{"StateTransition", errs.NewStateTransitionError("id", "confirmed", "cancel", errs.ErrAlreadyConfirmed), http.StatusConflict},
		{"MethodInUse", errs.ErrPaymentMethodInUse, http.StatusConflict},
		{"ConcurrencyConflict", errs.ErrConcurrencyConflict, http.StatusConflict},
		{"Storage", errs.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatus(tc.err))
		})
	}
}
