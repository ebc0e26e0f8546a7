package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	"github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/database"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/model"
)

// DonationRepository is the GORM-backed implementation of the donation store
type DonationRepository struct {
	db         *gorm.DB
	logger     core.Logger
	classifier *ErrorClassifier
}

// NewDonationRepository creates a donation repository
func NewDonationRepository(db *gorm.DB, logger core.Logger) *DonationRepository {
	return &DonationRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

// getDB returns the transaction from context when one is active,
// otherwise the shared connection
func (r *DonationRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := database.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create persists a new donation
func (r *DonationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	m := donationToModel(donation)
	if err := r.getDB(ctx).Create(m).Error; err != nil {
		if r.classifier.IsDuplicateKeyError(err) {
			return errs.ErrCodeCollision
		}
		if r.classifier.IsForeignKeyError(err) {
			return errs.ErrPaymentMethodNotFound
		}
		r.logger.Error("failed to create donation", map[string]any{
			"code":  donation.Code,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return nil
}

// GetByID fetches a donation by its identifier
func (r *DonationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var m model.Donation
	err := r.getDB(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDonationNotFound
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return donationToEntity(&m), nil
}

// GetByIDForUpdate fetches a donation and takes a row-level lock.
// Must run inside a unit-of-work transaction
func (r *DonationRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var m model.Donation
	err := r.getDB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDonationNotFound
		}
		if r.classifier.IsLockError(err) {
			return nil, errs.ErrConcurrencyConflict
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return donationToEntity(&m), nil
}

// GetByCode fetches a donation by its public donation code
func (r *DonationRepository) GetByCode(ctx context.Context, code string) (*entity.Donation, error) {
	var m model.Donation
	err := r.getDB(ctx).Where("code = ?", code).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDonationNotFound
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return donationToEntity(&m), nil
}

// CodeExists reports whether a donation code is already taken
func (r *DonationRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&model.Donation{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return count > 0, nil
}

// List returns donations matching the filter, newest first, plus the total
// match count before pagination
func (r *DonationRepository) List(ctx context.Context, filter persistence.DonationFilter) ([]*entity.Donation, int64, error) {
	query := r.getDB(ctx).Model(&model.Donation{})
	query = applyDonationFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var models []model.Donation
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	donations := make([]*entity.Donation, len(models))
	for i := range models {
		donations[i] = donationToEntity(&models[i])
	}
	return donations, total, nil
}

// UpdateStatus writes the status transition fields of a donation
func (r *DonationRepository) UpdateStatus(ctx context.Context, donation *entity.Donation) error {
	updates := map[string]any{
		"status":        string(donation.Status),
		"confirmed_at":  donation.ConfirmedAt,
		"confirmed_by":  donation.ConfirmedBy,
		"cancel_reason": donation.CancelReason,
		"updated_at":    donation.UpdatedAt,
	}
	result := r.getDB(ctx).Model(&model.Donation{}).
		Where("id = ?", donation.ID).
		Updates(updates)
	if result.Error != nil {
		if r.classifier.IsLockError(result.Error) {
			return errs.ErrConcurrencyConflict
		}
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrDonationNotFound
	}
	return nil
}

// CountByPaymentMethod counts donations referencing a payment method
func (r *DonationRepository) CountByPaymentMethod(ctx context.Context, paymentMethodID uuid.UUID) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&model.Donation{}).
		Where("payment_method_id = ?", paymentMethodID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return count, nil
}

type categoryTotalRow struct {
	Category string
	Total    int64
	Count    int64
}

// CategoryTotals sums confirmed donation amounts per category within the
// given range
func (r *DonationRepository) CategoryTotals(ctx context.Context, dateRange entity.DateRange) ([]entity.CategoryTotal, error) {
	query := r.getDB(ctx).Model(&model.Donation{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status = ?", string(entity.StatusConfirmed))
	query = applyDateRange(query, dateRange)

	var rows []categoryTotalRow
	err := query.Group("category").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	totals := make([]entity.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = entity.CategoryTotal{
			Category: entity.DonationCategory(row.Category),
			Total:    row.Total,
			Count:    row.Count,
		}
	}
	return totals, nil
}

type monthlyTotalRow struct {
	Month string
	Total int64
	Count int64
}

// MonthlyTotals sums confirmed donation amounts per creation month within
// the given range
func (r *DonationRepository) MonthlyTotals(ctx context.Context, dateRange entity.DateRange) ([]entity.MonthlyTotal, error) {
	query := r.getDB(ctx).Model(&model.Donation{}).
		Select("TO_CHAR(created_at, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status = ?", string(entity.StatusConfirmed))
	query = applyDateRange(query, dateRange)

	var rows []monthlyTotalRow
	err := query.
		Group("TO_CHAR(created_at, 'YYYY-MM')").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	totals := make([]entity.MonthlyTotal, len(rows))
	for i, row := range rows {
		totals[i] = entity.MonthlyTotal{
			Month: row.Month,
			Total: row.Total,
			Count: row.Count,
		}
	}
	return totals, nil
}

type statusCountRow struct {
	Status string
	Count  int64
}

// StatusCounts counts donations grouped by status within the given range
func (r *DonationRepository) StatusCounts(ctx context.Context, dateRange entity.DateRange) (*entity.StatusCounts, error) {
	query := r.getDB(ctx).Model(&model.Donation{}).
		Select("status, COUNT(*) AS count")
	query = applyDateRange(query, dateRange)

	var rows []statusCountRow
	err := query.Group("status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	counts := &entity.StatusCounts{}
	for _, row := range rows {
		counts.Total += row.Count
		switch entity.DonationStatus(row.Status) {
		case entity.StatusPending:
			counts.Pending = row.Count
		case entity.StatusConfirmed:
			counts.Confirmed = row.Count
		case entity.StatusCancelled:
			counts.Cancelled = row.Count
		}
	}
	return counts, nil
}

func applyDonationFilter(query *gorm.DB, filter persistence.DonationFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	return applyDateRange(query, filter.Range)
}

func applyDateRange(query *gorm.DB, dateRange entity.DateRange) *gorm.DB {
	if dateRange.From != nil {
		query = query.Where("created_at >= ?", *dateRange.From)
	}
	if dateRange.To != nil {
		query = query.Where("created_at < ?", *dateRange.To)
	}
	return query
}

func donationToModel(d *entity.Donation) *model.Donation {
	return &model.Donation{
		ID:              d.ID,
		Code:            d.Code,
		DonorName:       d.DonorName,
		DonorEmail:      d.DonorEmail,
		DonorPhone:      d.DonorPhone,
		Amount:          d.Amount,
		Category:        string(d.Category),
		PaymentMethodID: d.PaymentMethodID,
		Notes:           d.Notes,
		Status:          string(d.Status),
		CancelReason:    d.CancelReason,
		ConfirmedBy:     d.ConfirmedBy,
		ConfirmedAt:     d.ConfirmedAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func donationToEntity(m *model.Donation) *entity.Donation {
	return &entity.Donation{
		ID:              m.ID,
		Code:            m.Code,
		DonorName:       m.DonorName,
		DonorEmail:      m.DonorEmail,
		DonorPhone:      m.DonorPhone,
		Amount:          m.Amount,
		Category:        entity.DonationCategory(m.Category),
		PaymentMethodID: m.PaymentMethodID,
		Notes:           m.Notes,
		Status:          entity.DonationStatus(m.Status),
		CancelReason:    m.CancelReason,
		ConfirmedBy:     m.ConfirmedBy,
		ConfirmedAt:     m.ConfirmedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
