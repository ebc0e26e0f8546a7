package migration

import (
	"gorm.io/gorm"

	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
)

// IndexManager manages PostgreSQL indexes for the donation schema
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the indexes the list and stats queries depend on
func (m *IndexManager) CreateIndexes() error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	// Unique index on donation code backs the collision-retry loop in the
	// intake path
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_donations_code
		ON donations (code)
	`).Error; err != nil {
		m.logger.Error("Failed to create unique index on donations.code", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index for status-filtered listings ordered by recency
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_donations_status_created_at
		ON donations (status, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create status_created_at composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index covering the category aggregation, which only reads
	// confirmed rows
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_donations_confirmed_category
		ON donations (category, amount)
		WHERE status = 'confirmed'
	`).Error; err != nil {
		m.logger.Error("Failed to create confirmed category partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at range scans in monthly aggregation
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_donations_created_at_brin
		ON donations USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Index backing the payment-method-in-use check on delete
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_donations_payment_method_id
		ON donations (payment_method_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on payment_method_id", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Index for the public active listing ordered by display position
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payment_methods_active_order
		ON payment_methods (display_order)
		WHERE is_active = true
	`).Error; err != nil {
		m.logger.Error("Failed to create active payment methods index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}
