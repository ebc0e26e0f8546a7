package donation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
)

// Workflow is the staff-facing confirmation workflow, the only privileged
// mutation path in the system. Each transition runs inside a unit-of-work
// transaction with a row-level lock on the donation, so two racing calls on
// the same pending donation serialize: exactly one wins, the loser observes
// the terminal state.
type Workflow struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWorkflow creates the confirmation workflow
func NewWorkflow(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Workflow {
	return &Workflow{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Confirm transitions a pending donation to confirmed and records the
// acting staff identity and confirmation timestamp
func (w *Workflow) Confirm(ctx context.Context, donationID, staffID uuid.UUID) (*entity.Donation, error) {
	return w.transition(ctx, donationID, "confirm", func(d *entity.Donation) error {
		return d.Confirm(staffID, w.timeProvider)
	})
}

// Cancel transitions a pending donation to cancelled. The confirmation
// timestamp stays nil; the reason is recorded for the audit trail only.
func (w *Workflow) Cancel(ctx context.Context, donationID, staffID uuid.UUID, reason string) (*entity.Donation, error) {
	return w.transition(ctx, donationID, "cancel", func(d *entity.Donation) error {
		return d.Cancel(staffID, reason, w.timeProvider)
	})
}

// transition locks the donation row, applies the state change, and persists
// it atomically. Aggregates are recomputed on read, so a committed
// transition is immediately visible to the next stats query.
func (w *Workflow) transition(
	ctx context.Context,
	donationID uuid.UUID,
	attempted string,
	apply func(*entity.Donation) error,
) (*entity.Donation, error) {
	txCtx, err := w.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := w.uow.Rollback(txCtx); rbErr != nil {
				w.logger.Error("Failed to roll back donation transition", map[string]any{
					"donation_id": donationID.String(),
					"attempted":   attempted,
					"error":       rbErr.Error(),
				})
			}
		}
	}()

	repo := w.uow.GetDonationRepository(txCtx)

	donation, err := repo.GetByIDForUpdate(txCtx, donationID)
	if err != nil {
		return nil, err
	}

	if err := apply(donation); err != nil {
		w.logger.Warn("Donation transition rejected", map[string]any{
			"donation_id": donationID.String(),
			"attempted":   attempted,
			"status":      string(donation.Status),
		})
		return nil, err
	}

	if err := repo.UpdateStatus(txCtx, donation); err != nil {
		return nil, err
	}

	if err := w.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("committing donation transition: %w", err)
	}
	committed = true

	w.logger.Info("Donation transition committed", map[string]any{
		"donation_id":   donation.ID.String(),
		"donation_code": donation.Code,
		"status":        string(donation.Status),
		"amount":        donation.Amount,
	})
	return donation, nil
}
