package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	"github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/database"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/model"
)

// PaymentMethodRepository is the GORM-backed implementation of the
// payment method store
type PaymentMethodRepository struct {
	db         *gorm.DB
	logger     core.Logger
	classifier *ErrorClassifier
}

// NewPaymentMethodRepository creates a payment method repository
func NewPaymentMethodRepository(db *gorm.DB, logger core.Logger) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

func (r *PaymentMethodRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := database.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create persists a new payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	m := paymentMethodToModel(method)
	if err := r.getDB(ctx).Create(m).Error; err != nil {
		r.logger.Error("failed to create payment method", map[string]any{
			"name":  method.Name,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return nil
}

// GetByID fetches a payment method by its identifier
func (r *PaymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	var m model.PaymentMethod
	err := r.getDB(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return paymentMethodToEntity(&m), nil
}

// List returns payment methods ordered by display order. When activeOnly is
// set, deactivated methods are excluded
func (r *PaymentMethodRepository) List(ctx context.Context, activeOnly bool) ([]*entity.PaymentMethod, error) {
	query := r.getDB(ctx).Model(&model.PaymentMethod{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.PaymentMethod
	if err := query.Order("display_order ASC, id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	methods := make([]*entity.PaymentMethod, len(models))
	for i := range models {
		methods[i] = paymentMethodToEntity(&models[i])
	}
	return methods, nil
}

// Update overwrites a payment method
func (r *PaymentMethodRepository) Update(ctx context.Context, method *entity.PaymentMethod) error {
	m := paymentMethodToModel(method)
	result := r.getDB(ctx).Model(&model.PaymentMethod{}).
		Where("id = ?", method.ID).
		Updates(map[string]any{
			"name":           m.Name,
			"type":           m.Type,
			"account_number": m.AccountNumber,
			"account_name":   m.AccountName,
			"qr_image_url":   m.QRImageURL,
			"instructions":   m.Instructions,
			"display_order":  m.DisplayOrder,
			"is_active":      m.IsActive,
			"updated_at":     m.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentMethodNotFound
	}
	return nil
}

// UpdateDisplayOrders applies a batch of display order changes atomically
func (r *PaymentMethodRepository) UpdateDisplayOrders(ctx context.Context, updates []persistence.DisplayOrderUpdate) error {
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&model.PaymentMethod{}).
				Where("id = ?", update.ID).
				Update("display_order", update.DisplayOrder)
			if result.Error != nil {
				return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, result.Error)
			}
			if result.RowsAffected == 0 {
				return errs.ErrPaymentMethodNotFound
			}
		}
		return nil
	})
}

// Delete removes a payment method. Methods referenced by donations cannot
// be deleted
func (r *PaymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var referenced int64
	err := r.getDB(ctx).Model(&model.Donation{}).
		Where("payment_method_id = ?", id).
		Count(&referenced).Error
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	if referenced > 0 {
		return errs.ErrPaymentMethodInUse
	}

	result := r.getDB(ctx).Where("id = ?", id).Delete(&model.PaymentMethod{})
	if result.Error != nil {
		// the FK check races with concurrent inserts, the constraint is the
		// final arbiter
		if r.classifier.IsForeignKeyError(result.Error) {
			return errs.ErrPaymentMethodInUse
		}
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentMethodNotFound
	}
	return nil
}

func paymentMethodToModel(p *entity.PaymentMethod) *model.PaymentMethod {
	return &model.PaymentMethod{
		ID:            p.ID,
		Name:          p.Name,
		Type:          string(p.Type),
		AccountNumber: p.AccountNumber,
		AccountName:   p.AccountName,
		QRImageURL:    p.QRImageURL,
		Instructions:  p.Instructions,
		DisplayOrder:  p.DisplayOrder,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func paymentMethodToEntity(m *model.PaymentMethod) *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:            m.ID,
		Name:          m.Name,
		Type:          entity.PaymentMethodType(m.Type),
		AccountNumber: m.AccountNumber,
		AccountName:   m.AccountName,
		QRImageURL:    m.QRImageURL,
		Instructions:  m.Instructions,
		DisplayOrder:  m.DisplayOrder,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
