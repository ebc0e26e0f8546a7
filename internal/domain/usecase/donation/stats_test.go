package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	coremocks "github.com/masjid-digital/donation-processor/mocks/port/core"
	persistencemocks "github.com/masjid-digital/donation-processor/mocks/port/persistence"
)

const testStatsMonths = 12

func TestStatsEngine(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txMarker{}, "tx")
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Aggregates assemble from the ledger", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		from := now.AddDate(0, -1, 0)
		dateRange := entity.DateRange{From: &from, To: &now}

		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()
		repo.On("StatusCounts", txCtx, dateRange).Return(&entity.StatusCounts{
			Total:     10,
			Pending:   3,
			Confirmed: 6,
			Cancelled: 1,
		}, nil).Once()
		repo.On("CategoryTotals", txCtx, dateRange).Return([]entity.CategoryTotal{
			{Category: entity.CategoryInfaq, Total: 150000, Count: 4},
			{Category: entity.CategoryZakat, Total: 250000, Count: 2},
		}, nil).Once()
		repo.On("MonthlyTotals", txCtx, dateRange).Return([]entity.MonthlyTotal{
			{Month: "2025-02", Total: 100000, Count: 2},
			{Month: "2025-03", Total: 300000, Count: 4},
		}, nil).Once()

		engine := NewStatsEngine(uow, timeProvider, newQuietLogger(t), testStatsMonths)
		stats, err := engine.Stats(ctx, dateRange)

		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.TotalCount)
		assert.Equal(t, int64(3), stats.PendingCount)
		assert.Equal(t, int64(6), stats.ConfirmedCount)
		assert.Equal(t, int64(1), stats.CancelledCount)

		// totalAmount is derived from the category sums
		assert.Equal(t, int64(400000), stats.TotalAmount)
		assert.Equal(t, int64(150000), stats.ByCategory[entity.CategoryInfaq].Total)
		assert.Equal(t, int64(2), stats.ByCategory[entity.CategoryZakat].Count)
		assert.Equal(t, int64(300000), stats.ByMonth["2025-03"].Total)
	})

	t.Run("Empty ledger yields zeroes, not an error", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		from := now.AddDate(0, -1, 0)
		dateRange := entity.DateRange{From: &from}

		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()
		repo.On("StatusCounts", txCtx, dateRange).Return(&entity.StatusCounts{}, nil).Once()
		repo.On("CategoryTotals", txCtx, dateRange).Return(nil, nil).Once()
		repo.On("MonthlyTotals", txCtx, dateRange).Return(nil, nil).Once()

		engine := NewStatsEngine(uow, timeProvider, newQuietLogger(t), testStatsMonths)
		stats, err := engine.Stats(ctx, dateRange)

		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalAmount)
		assert.Empty(t, stats.ByCategory)
		assert.Empty(t, stats.ByMonth)
	})

	t.Run("Zero range bounds the monthly breakdown by the default window", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		expectedFrom := now.AddDate(0, -testStatsMonths, 0)

		timeProvider.On("Now").Return(now).Once()
		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()
		repo.On("StatusCounts", txCtx, entity.DateRange{}).Return(&entity.StatusCounts{}, nil).Once()
		repo.On("CategoryTotals", txCtx, entity.DateRange{}).Return(nil, nil).Once()
		repo.On("MonthlyTotals", txCtx, mock.MatchedBy(func(r entity.DateRange) bool {
			return r.From != nil && r.From.Equal(expectedFrom) && r.To == nil
		})).Return(nil, nil).Once()

		engine := NewStatsEngine(uow, timeProvider, newQuietLogger(t), testStatsMonths)
		_, err := engine.Stats(ctx, entity.DateRange{})

		require.NoError(t, err)
	})

	t.Run("Aggregation failure propagates", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockDonationRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		uow.On("Begin", ctx).Return(txCtx, nil).Once()
		uow.On("GetDonationRepository", txCtx).Return(repo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()
		repo.On("StatusCounts", txCtx, entity.DateRange{}).Return(nil, errs.ErrDatabaseConnection).Once()

		engine := NewStatsEngine(uow, timeProvider, newQuietLogger(t), testStatsMonths)
		stats, err := engine.Stats(ctx, entity.DateRange{})

		assert.Nil(t, stats)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})

	t.Run("Begin failure", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		timeProvider := coremocks.NewMockTimeProvider(t)

		uow.On("Begin", ctx).Return(nil, errs.ErrDatabaseConnection).Once()

		engine := NewStatsEngine(uow, timeProvider, newQuietLogger(t), testStatsMonths)
		stats, err := engine.Stats(ctx, entity.DateRange{})

		assert.Nil(t, stats)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})
}
