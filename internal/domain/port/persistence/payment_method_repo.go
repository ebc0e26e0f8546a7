package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
)

// DisplayOrderUpdate pairs a payment method with its new list position
type DisplayOrderUpdate struct {
	ID           uuid.UUID
	DisplayOrder int
}

// PaymentMethodRepository defines persistence for the payment method registry
type PaymentMethodRepository interface {
	// Create saves a new payment method
	//
	// Possible errors:
	// - ErrDatabaseConnection
	Create(ctx context.Context, method *entity.PaymentMethod) error

	// GetByID retrieves a payment method by identifier
	//
	// Possible errors:
	// - ErrPaymentMethodNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)

	// List returns methods ordered by display order then identifier.
	// With activeOnly set, inactive methods are excluded.
	List(ctx context.Context, activeOnly bool) ([]*entity.PaymentMethod, error)

	// Update persists all editable fields of an existing method
	//
	// Possible errors:
	// - ErrPaymentMethodNotFound
	// - ErrDatabaseConnection
	Update(ctx context.Context, method *entity.PaymentMethod) error

	// UpdateDisplayOrders applies a batch of reorder updates
	UpdateDisplayOrders(ctx context.Context, updates []DisplayOrderUpdate) error

	// Delete removes a method outright. Fails if any donation references
	// it; deactivation is the supported retirement path.
	//
	// Possible errors:
	// - ErrPaymentMethodNotFound
	// - ErrPaymentMethodInUse
	// - ErrDatabaseConnection
	Delete(ctx context.Context, id uuid.UUID) error
}
