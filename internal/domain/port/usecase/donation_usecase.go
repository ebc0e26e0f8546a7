package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
)

// CreateDonationRequest represents an incoming donor pledge
type CreateDonationRequest struct {
	DonorName       string
	DonorEmail      *string
	DonorPhone      *string
	Amount          int64
	Category        string
	PaymentMethodID *uuid.UUID
	Notes           string
}

// DonationPage is a listing result with the total match count for pagination
type DonationPage struct {
	Donations []*entity.Donation
	Total     int64
}

// DonationUseCase defines the donation ledger, confirmation workflow, and
// aggregation operations
type DonationUseCase interface {
	// Create validates and stores a new pending donation with a fresh code
	Create(ctx context.Context, req CreateDonationRequest) (*entity.Donation, error)

	// Get retrieves a donation by identifier
	Get(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// GetByCode retrieves a donation by its donor-facing code
	GetByCode(ctx context.Context, code string) (*entity.Donation, error)

	// List returns donations matching the filter, newest first
	List(ctx context.Context, filter persistence.DonationFilter) (*DonationPage, error)

	// Confirm transitions a pending donation to confirmed on behalf of staff.
	// Exactly one of two racing calls succeeds; the other observes the
	// terminal state.
	Confirm(ctx context.Context, donationID, staffID uuid.UUID) (*entity.Donation, error)

	// Cancel transitions a pending donation to cancelled on behalf of staff
	Cancel(ctx context.Context, donationID, staffID uuid.UUID, reason string) (*entity.Donation, error)

	// Stats recomputes the aggregate view from the ledger
	Stats(ctx context.Context, dateRange entity.DateRange) (*entity.DonationStats, error)
}
