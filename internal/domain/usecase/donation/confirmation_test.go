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
	coremocks "github.com/masjid-digital/donation-processor/mocks/port/core"
	persistencemocks "github.com/masjid-digital/donation-processor/mocks/port/persistence"
)

type txMarker struct{}

func TestWorkflowConfirm(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txMarker{}, "tx")
	confirmedAt := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)
	donationID := uuid.New()
	staffID := uuid.New()

	pendingDonation := func() *entity.Donation {
		return &entity.Donation{
			ID:        donationID,
			Code:      "A1B2C3D4",
			DonorName: "Ahmad Fulan",
			Amount:    50000,
			Category:  entity.CategoryInfaq,
			Status:    entity.StatusPending,
		}
	}

	t.Run("Pending donation confirms and commits", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		timeProvider.On("Now").Return(confirmedAt).Once()
		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		repo.On("GetByIDForUpdate", txCtx, donationID).Return(pendingDonation(), nil).Once()
		repo.On("UpdateStatus", txCtx, mock.MatchedBy(func(d *entity.Donation) bool {
			return d.Status == entity.StatusConfirmed && d.ConfirmedAt != nil
		})).Return(nil).Once()
		uow.On("Commit", txCtx).Return(nil).Once()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Confirm(ctx, donationID, staffID)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, donation.Status)
		require.NotNil(t, donation.ConfirmedBy)
		assert.Equal(t, staffID, *donation.ConfirmedBy)
		require.NotNil(t, donation.ConfirmedAt)
		assert.Equal(t, confirmedAt, *donation.ConfirmedAt)
	})

	t.Run("Already confirmed rolls back with a conflict", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		already := pendingDonation()
		already.Status = entity.StatusConfirmed

		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		repo.On("GetByIDForUpdate", txCtx, donationID).Return(already, nil).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Confirm(ctx, donationID, staffID)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrAlreadyConfirmed))
		assert.True(t, errs.IsStateTransitionError(err))
	})

	t.Run("Donation not found rolls back", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		repo.On("GetByIDForUpdate", txCtx, donationID).Return(nil, errs.ErrDonationNotFound).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Confirm(ctx, donationID, staffID)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrDonationNotFound))
	})

	t.Run("Begin failure", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		uow.On("Begin", ctx).Return(nil, errs.ErrDatabaseConnection).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Maybe()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Confirm(ctx, donationID, staffID)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})

	t.Run("UpdateStatus failure rolls back", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		timeProvider.On("Now").Return(confirmedAt).Once()
		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		repo.On("GetByIDForUpdate", txCtx, donationID).Return(pendingDonation(), nil).Once()
		repo.On("UpdateStatus", txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Confirm(ctx, donationID, staffID)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})

	t.Run("Lock contention surfaces as concurrency conflict", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		repo.On("GetByIDForUpdate", txCtx, donationID).Return(nil, errs.ErrConcurrencyConflict).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Confirm(ctx, donationID, staffID)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrConcurrencyConflict))
	})
}

func TestWorkflowCancel(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txMarker{}, "tx")
	cancelledAt := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)
	donationID := uuid.New()
	staffID := uuid.New()

	t.Run("Pending donation cancels with reason", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		pending := &entity.Donation{ID: donationID, Status: entity.StatusPending}

		timeProvider.On("Now").Return(cancelledAt).Once()
		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		repo.On("GetByIDForUpdate", txCtx, donationID).Return(pending, nil).Once()
		repo.On("UpdateStatus", txCtx, mock.MatchedBy(func(d *entity.Donation) bool {
			return d.Status == entity.StatusCancelled && d.ConfirmedAt == nil
		})).Return(nil).Once()
		uow.On("Commit", txCtx).Return(nil).Once()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Cancel(ctx, donationID, staffID, "duplicate entry")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, donation.Status)
		assert.Equal(t, "duplicate entry", donation.CancelReason)
		assert.Nil(t, donation.ConfirmedAt)
	})

	t.Run("Cancelled donation rejects a second cancel", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		terminal := &entity.Donation{ID: donationID, Status: entity.StatusCancelled}

		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		repo.On("GetByIDForUpdate", txCtx, donationID).Return(terminal, nil).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		workflow := NewWorkflow(uow, timeProvider, newQuietLogger(t))
		donation, err := workflow.Cancel(ctx, donationID, staffID, "")

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrAlreadyCancelled))
	})
}
