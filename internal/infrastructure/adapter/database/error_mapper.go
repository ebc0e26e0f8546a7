package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/masjid-digital/donation-processor/internal/domain/error"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeDonation represents the donation entity
	EntityTypeDonation EntityType = "donation"
	// EntityTypePaymentMethod represents the payment method entity
	EntityTypePaymentMethod EntityType = "payment_method"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Transaction and locking errors
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "could not serialize") ||
		strings.Contains(errMsg, "lock timeout"):
		return domainErr.ErrConcurrencyConflict

	// Duplicate key errors. The only unique index in the schema is the
	// donation code
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrCodeCollision

	// Constraint violations
	case strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrPaymentMethodInUse

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeDonation:
			return domainErr.ErrDonationNotFound
		case EntityTypePaymentMethod:
			return domainErr.ErrPaymentMethodNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// MapDonationNotFoundError maps database errors to donation not found errors
func (m *ErrorMapper) MapDonationNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeDonation)
}

// MapPaymentMethodNotFoundError maps database errors to payment method not found errors
func (m *ErrorMapper) MapPaymentMethodNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypePaymentMethod)
}
