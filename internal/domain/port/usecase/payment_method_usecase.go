package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
)

// PaymentMethodUseCase defines registry operations. Mutations are staff-only;
// List with activeOnly backs the donor-facing display.
type PaymentMethodUseCase interface {
	// List returns methods ordered by display order then identifier
	List(ctx context.Context, activeOnly bool) ([]*entity.PaymentMethod, error)

	// Get retrieves a single method
	Get(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)

	// Create validates type-specific required fields and stores the method
	Create(ctx context.Context, input entity.PaymentMethodInput) (*entity.PaymentMethod, error)

	// Update overwrites the editable fields of an existing method
	Update(ctx context.Context, id uuid.UUID, input entity.PaymentMethodInput) (*entity.PaymentMethod, error)

	// Deactivate hides a method from new donors without deleting it
	Deactivate(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)

	// Reorder applies a batch of display-order updates
	Reorder(ctx context.Context, updates []persistence.DisplayOrderUpdate) error

	// Delete removes an unreferenced method outright
	Delete(ctx context.Context, id uuid.UUID) error
}
