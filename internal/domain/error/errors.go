package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeAmountBelowMinimum       = 4001
	CodeInvalidCategory          = 4002
	CodeInvalidDonorName         = 4003
	CodeInvalidPaymentMethodType = 4004
	CodeMissingAccountFields     = 4005
	CodeMissingQRImage           = 4006
	CodeValidation               = 4007
	CodeUnauthorized             = 4010
	CodeDonationNotFound         = 4040
	CodePaymentMethodNotFound    = 4041
	CodeAlreadyConfirmed         = 4090
	CodeAlreadyCancelled         = 4091
	CodePaymentMethodInUse       = 4092
	CodeConcurrencyConflict      = 4093

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorageFailure = 5030
)

// Base error types
var (
	// ErrAmountBelowMinimum is returned when a donation amount is below the configured floor
	ErrAmountBelowMinimum = errors.New("donation amount is below the configured minimum")

	// ErrInvalidCategory is returned when the donation category is not one of the allowed values
	ErrInvalidCategory = errors.New("invalid donation category")

	// ErrInvalidDonorName is returned when the donor name is empty
	ErrInvalidDonorName = errors.New("donor name cannot be empty")

	// ErrInvalidPaymentMethodType is returned when the payment method type is unknown
	ErrInvalidPaymentMethodType = errors.New("invalid payment method type")

	// ErrMissingAccountFields is returned when a bank/e-wallet method lacks account details
	ErrMissingAccountFields = errors.New("account number and account name are required for this payment method type")

	// ErrMissingQRImage is returned when a QRIS method lacks a QR image reference
	ErrMissingQRImage = errors.New("QR image URL is required for QRIS payment methods")

	// ErrDonationNotFound is returned when the requested donation doesn't exist
	ErrDonationNotFound = errors.New("donation not found")

	// ErrPaymentMethodNotFound is returned when the referenced payment method doesn't exist
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrAlreadyConfirmed is returned on any attempt to transition a confirmed donation
	ErrAlreadyConfirmed = errors.New("donation has already been confirmed")

	// ErrAlreadyCancelled is returned on any attempt to transition a cancelled donation
	ErrAlreadyCancelled = errors.New("donation has already been cancelled")

	// ErrPaymentMethodInUse is returned when deleting a method still referenced by donations
	ErrPaymentMethodInUse = errors.New("payment method is referenced by existing donations")

	// ErrConcurrencyConflict is returned when two staff operations raced on the same donation
	ErrConcurrencyConflict = errors.New("donation was modified by a concurrent operation")

	// ErrCodeCollision is returned when a generated donation code already exists
	ErrCodeCollision = errors.New("donation code already exists")

	// ErrUnauthorized is returned when the staff identity is missing or invalid
	ErrUnauthorized = errors.New("staff authentication required")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrAmountBelowMinimum):
		return CodeAmountBelowMinimum
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrInvalidDonorName):
		return CodeInvalidDonorName
	case errors.Is(err, ErrInvalidPaymentMethodType):
		return CodeInvalidPaymentMethodType
	case errors.Is(err, ErrMissingAccountFields):
		return CodeMissingAccountFields
	case errors.Is(err, ErrMissingQRImage):
		return CodeMissingQRImage
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrDonationNotFound):
		return CodeDonationNotFound
	case errors.Is(err, ErrPaymentMethodNotFound):
		return CodePaymentMethodNotFound
	case errors.Is(err, ErrAlreadyConfirmed):
		return CodeAlreadyConfirmed
	case errors.Is(err, ErrAlreadyCancelled):
		return CodeAlreadyCancelled
	case errors.Is(err, ErrPaymentMethodInUse):
		return CodePaymentMethodInUse
	case errors.Is(err, ErrConcurrencyConflict):
		return CodeConcurrencyConflict
	case errors.Is(err, ErrDatabaseConnection):
		return CodeStorageFailure
	case IsValidationError(err):
		return CodeValidation
	default:
		return CodeInternalServer
	}
}

// ValidationError carries field-level detail for user-correctable input errors
type ValidationError struct {
	Fields []string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation failed: %v", e.Err)
	}
	return fmt.Sprintf("validation failed for fields [%s]: %v", strings.Join(e.Fields, ", "), e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"fields":     e.Fields,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error with the offending fields
func NewValidationError(err error, fields ...string) error {
	return &ValidationError{Fields: fields, Err: err}
}

// StateTransitionError reports an illegal donation state transition.
// Surfaced distinctly from NotFound so clients can tell "already handled"
// from "never existed".
type StateTransitionError struct {
	DonationID    string
	CurrentStatus string
	Attempted     string
	Err           error
}

// Error implements the error interface for StateTransitionError
func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s donation %s in status %q: %v",
		e.Attempted, e.DonationID, e.CurrentStatus, e.Err)
}

// Unwrap returns the underlying error
func (e *StateTransitionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StateTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "state_transition_error",
		"donation_id":    e.DonationID,
		"current_status": e.CurrentStatus,
		"attempted":      e.Attempted,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewStateTransitionError creates a detailed illegal-transition error
func NewStateTransitionError(donationID, currentStatus, attempted string, err error) error {
	return &StateTransitionError{
		DonationID:    donationID,
		CurrentStatus: currentStatus,
		Attempted:     attempted,
		Err:           err,
	}
}

// IsValidationError checks if the error is a user-correctable validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrAmountBelowMinimum) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidDonorName) ||
		errors.Is(err, ErrInvalidPaymentMethodType) ||
		errors.Is(err, ErrMissingAccountFields) ||
		errors.Is(err, ErrMissingQRImage)
}

// IsStateTransitionError checks if the error is an illegal state transition
func IsStateTransitionError(err error) bool {
	var se *StateTransitionError
	if errors.As(err, &se) {
		return true
	}
	return errors.Is(err, ErrAlreadyConfirmed) || errors.Is(err, ErrAlreadyCancelled)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDonationNotFound) ||
		errors.Is(err, ErrPaymentMethodNotFound)
}

// IsConflictError checks if the error should surface as an HTTP conflict
func IsConflictError(err error) bool {
	return IsStateTransitionError(err) ||
		errors.Is(err, ErrPaymentMethodInUse) ||
		errors.Is(err, ErrConcurrencyConflict)
}

// IsStorageError checks if the error is a transient storage failure.
// Callers must not interpret it as success or failure of the underlying
// state change without re-querying.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}
