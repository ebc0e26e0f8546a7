package paymentmethod

import (
	"context"

	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
)

// Registry manages the ordered list of payment channels offered to donors.
// No aggregate recomputation hangs off these operations; the registry only
// persists.
type Registry struct {
	repo         persistence.PaymentMethodRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRegistry creates the payment method registry
func NewRegistry(repo persistence.PaymentMethodRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *Registry {
	return &Registry{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns methods ordered by display order then identifier
func (r *Registry) List(ctx context.Context, activeOnly bool) ([]*entity.PaymentMethod, error) {
	return r.repo.List(ctx, activeOnly)
}

// Get retrieves a single method
func (r *Registry) Get(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	return r.repo.GetByID(ctx, id)
}

// Create validates type-specific required fields and stores the method
func (r *Registry) Create(ctx context.Context, input entity.PaymentMethodInput) (*entity.PaymentMethod, error) {
	method, err := entity.NewPaymentMethod(input, r.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := r.repo.Create(ctx, method); err != nil {
		return nil, err
	}

	r.logger.Info("Payment method created", map[string]any{
		"payment_method_id": method.ID.String(),
		"name":              method.Name,
		"type":              string(method.Type),
	})
	return method, nil
}

// Update overwrites the editable fields of an existing method
func (r *Registry) Update(ctx context.Context, id uuid.UUID, input entity.PaymentMethodInput) (*entity.PaymentMethod, error) {
	method, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := method.ApplyUpdate(input, r.timeProvider); err != nil {
		return nil, err
	}

	if err := r.repo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// Deactivate hides a method from new donors. Historical donations keep
// their reference, so this never cascades.
func (r *Registry) Deactivate(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	method, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	method.Deactivate(r.timeProvider)

	if err := r.repo.Update(ctx, method); err != nil {
		return nil, err
	}

	r.logger.Info("Payment method deactivated", map[string]any{
		"payment_method_id": method.ID.String(),
		"name":              method.Name,
	})
	return method, nil
}

// Reorder applies a batch of display-order updates
func (r *Registry) Reorder(ctx context.Context, updates []persistence.DisplayOrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.repo.UpdateDisplayOrders(ctx, updates)
}

// Delete removes a method outright. The repository refuses when donations
// still reference it; callers should deactivate instead.
func (r *Registry) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("Payment method deleted", map[string]any{
		"payment_method_id": id.String(),
	})
	return nil
}
