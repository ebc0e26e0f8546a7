package donation

import (
	"context"
	"fmt"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
)

// StatsEngine derives the aggregate view from the ledger. Nothing is cached:
// every read recomputes inside one database transaction, so the numbers a
// dashboard shows always match the confirmed donations at the time of the
// query. TotalAmount is taken from the category sums, which makes the
// "byCategory sums to totalAmount" property true by construction.
type StatsEngine struct {
	uow           persistence.UnitOfWork
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	defaultMonths int
}

// NewStatsEngine creates the aggregation engine. defaultMonths bounds the
// monthly breakdown when the caller gives no explicit range.
func NewStatsEngine(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger, defaultMonths int) *StatsEngine {
	return &StatsEngine{
		uow:           uow,
		timeProvider:  timeProvider,
		logger:        logger,
		defaultMonths: defaultMonths,
	}
}

// Stats computes totals, per-category and per-month breakdowns, and status
// counts in a single transaction. Any failure propagates: stale or zeroed
// numbers must never reach a dashboard.
func (e *StatsEngine) Stats(ctx context.Context, dateRange entity.DateRange) (*entity.DonationStats, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning stats transaction: %w", err)
	}
	defer func() {
		if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
			e.logger.Warn("Stats transaction rollback failed", map[string]any{
				"error": rbErr.Error(),
			})
		}
	}()

	repo := e.uow.GetDonationRepository(txCtx)

	counts, err := repo.StatusCounts(txCtx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("counting donations: %w", err)
	}

	categoryRows, err := repo.CategoryTotals(txCtx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("aggregating by category: %w", err)
	}

	monthRange := dateRange
	if monthRange.IsZero() && e.defaultMonths > 0 {
		from := e.timeProvider.Now().AddDate(0, -e.defaultMonths, 0)
		monthRange = entity.DateRange{From: &from}
	}
	monthRows, err := repo.MonthlyTotals(txCtx, monthRange)
	if err != nil {
		return nil, fmt.Errorf("aggregating by month: %w", err)
	}

	stats := &entity.DonationStats{
		TotalCount:     counts.Total,
		PendingCount:   counts.Pending,
		ConfirmedCount: counts.Confirmed,
		CancelledCount: counts.Cancelled,
		ByCategory:     make(map[entity.DonationCategory]entity.CategoryTotal, len(categoryRows)),
		ByMonth:        make(map[string]entity.MonthlyTotal, len(monthRows)),
	}

	for _, row := range categoryRows {
		stats.ByCategory[row.Category] = row
		stats.TotalAmount += row.Total
	}
	for _, row := range monthRows {
		stats.ByMonth[row.Month] = row
	}

	e.logger.Debug("Donation stats computed", map[string]any{
		"total_amount":    stats.TotalAmount,
		"confirmed_count": stats.ConfirmedCount,
		"categories":      len(stats.ByCategory),
		"months":          len(stats.ByMonth),
	})
	return stats, nil
}
