package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
)

// DonationFilter narrows donation listings. Zero values mean "no filter".
type DonationFilter struct {
	Status   string
	Category string
	Range    entity.DateRange
	Limit    int
	Offset   int
}

// DonationRepository defines the ledger's persistence operations.
// Donations are financial records: there is no delete, and no update path
// other than the status transition.
type DonationRepository interface {
	// Create saves a new pending donation
	//
	// Possible errors:
	// - ErrCodeCollision: if the generated donation code already exists
	// - ErrPaymentMethodNotFound: if the referenced payment method is gone
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, donation *entity.Donation) error

	// GetByID retrieves a donation by its identifier
	//
	// Possible errors:
	// - ErrDonationNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// GetByIDForUpdate retrieves a donation and takes a row-level lock so
	// concurrent confirm/cancel calls on the same donation serialize.
	// Must be called inside a unit-of-work transaction.
	//
	// Possible errors:
	// - ErrDonationNotFound
	// - ErrConcurrencyConflict: if the lock could not be obtained
	// - ErrDatabaseConnection
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// GetByCode retrieves a donation by its donor-facing code
	//
	// Possible errors:
	// - ErrDonationNotFound
	// - ErrDatabaseConnection
	GetByCode(ctx context.Context, code string) (*entity.Donation, error)

	// CodeExists checks whether a donation code is already taken.
	// Used by the intake path to retry generation on collision.
	CodeExists(ctx context.Context, code string) (bool, error)

	// List returns donations matching the filter, newest first, plus the
	// total match count for pagination
	List(ctx context.Context, filter DonationFilter) ([]*entity.Donation, int64, error)

	// UpdateStatus persists the outcome of a state transition: status,
	// confirmation timestamp, confirming staff, and cancel reason.
	// All other fields are immutable after creation.
	//
	// Possible errors:
	// - ErrDonationNotFound
	// - ErrDatabaseConnection
	UpdateStatus(ctx context.Context, donation *entity.Donation) error

	// CountByPaymentMethod reports how many donations reference a method.
	// Used to refuse hard deletes of methods still in use.
	CountByPaymentMethod(ctx context.Context, paymentMethodID uuid.UUID) (int64, error)

	// CategoryTotals sums confirmed donation amounts grouped by category
	CategoryTotals(ctx context.Context, dateRange entity.DateRange) ([]entity.CategoryTotal, error)

	// MonthlyTotals sums confirmed donation amounts grouped by creation month
	MonthlyTotals(ctx context.Context, dateRange entity.DateRange) ([]entity.MonthlyTotal, error)

	// StatusCounts counts donations per status across the range
	StatusCounts(ctx context.Context, dateRange entity.DateRange) (*entity.StatusCounts, error)
}
