package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// TxFromContext returns the transaction stored in the context, or nil when
// no transaction is active
func TxFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return nil
	}
	return tx
}

// repositoryFactory builds transaction-bound repositories. The database
// package cannot import the repository package directly without a cycle, so
// the wiring in main supplies the constructors.
type repositoryFactory struct {
	donation      func(db *gorm.DB) persistence.DonationRepository
	paymentMethod func(db *gorm.DB) persistence.PaymentMethodRepository
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db      *gorm.DB
	logger  coreport.Logger
	factory repositoryFactory
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(
	db *gorm.DB,
	logger coreport.Logger,
	donationFactory func(db *gorm.DB) persistence.DonationRepository,
	paymentMethodFactory func(db *gorm.DB) persistence.PaymentMethodRepository,
) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
		factory: repositoryFactory{
			donation:      donationFactory,
			paymentMethod: paymentMethodFactory,
		},
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction with REPEATABLE READ isolation", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// REPEATABLE READ gives stats reads one consistent snapshot and is
	// sufficient for the row-locked status transitions
	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL REPEATABLE READ").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := TxFromContext(ctx)
	if tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := TxFromContext(ctx)
	if tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A rollback after a successful commit is the normal deferred-cleanup
	// path, not an error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetDonationRepository returns a donation repository in the current transaction
func (u *UnitOfWork) GetDonationRepository(ctx context.Context) persistence.DonationRepository {
	return u.factory.donation(u.getDbFromContext(ctx))
}

// GetPaymentMethodRepository returns a payment method repository in the current transaction
func (u *UnitOfWork) GetPaymentMethodRepository(ctx context.Context) persistence.PaymentMethodRepository {
	return u.factory.paymentMethod(u.getDbFromContext(ctx))
}

func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
