package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations inside one database
// transaction. The confirmation workflow uses it to pair the row lock with
// the status write, and the aggregation engine uses it so a stats read sees
// one consistent snapshot of the ledger.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetDonationRepository returns a donation repository bound to the current transaction
	GetDonationRepository(ctx context.Context) DonationRepository

	// GetPaymentMethodRepository returns a payment method repository bound to the current transaction
	GetPaymentMethodRepository(ctx context.Context) PaymentMethodRepository
}
