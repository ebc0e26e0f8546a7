package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
)

// PaymentMethodType represents the channel a donor may pay through
type PaymentMethodType string

// Payment method types
const (
	TypeBankTransfer PaymentMethodType = "bank_transfer"
	TypeEWallet      PaymentMethodType = "ewallet"
	TypeQRIS         PaymentMethodType = "qris"
)

// PaymentMethod represents a donor-facing payment channel. Inactive methods
// are hidden from new donors but stay valid for historical donation records.
type PaymentMethod struct {
	ID            uuid.UUID         // Unique identifier
	Name          string            // Display name
	Type          PaymentMethodType // Channel type
	AccountNumber *string           // Required for bank transfer and e-wallet
	AccountName   *string           // Account holder, required with AccountNumber
	QRImageURL    *string           // Required for QRIS
	Instructions  string            // Free-text payment instructions
	DisplayOrder  int               // Position in donor-facing lists, ties break by ID
	IsActive      bool              // Whether the method is offered to new donors
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentMethodInput carries the staff-supplied fields for creating or
// updating a payment method
type PaymentMethodInput struct {
	Name          string
	Type          string
	AccountNumber *string
	AccountName   *string
	QRImageURL    *string
	Instructions  string
	DisplayOrder  int
}

// NewPaymentMethod creates an active payment method after validating
// type-specific required fields
func NewPaymentMethod(input PaymentMethodInput, timeProvider coreport.TimeProvider) (*PaymentMethod, error) {
	if err := ValidatePaymentMethodInput(input); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &PaymentMethod{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(input.Name),
		Type:          PaymentMethodType(input.Type),
		AccountNumber: input.AccountNumber,
		AccountName:   input.AccountName,
		QRImageURL:    input.QRImageURL,
		Instructions:  input.Instructions,
		DisplayOrder:  input.DisplayOrder,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ApplyUpdate overwrites the editable fields after validation.
// The active flag is managed separately through Deactivate.
func (p *PaymentMethod) ApplyUpdate(input PaymentMethodInput, timeProvider coreport.TimeProvider) error {
	if err := ValidatePaymentMethodInput(input); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(input.Name)
	p.Type = PaymentMethodType(input.Type)
	p.AccountNumber = input.AccountNumber
	p.AccountName = input.AccountName
	p.QRImageURL = input.QRImageURL
	p.Instructions = input.Instructions
	p.DisplayOrder = input.DisplayOrder
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Deactivate hides the method from new donors without deleting it
func (p *PaymentMethod) Deactivate(timeProvider coreport.TimeProvider) {
	p.IsActive = false
	p.UpdatedAt = timeProvider.Now()
}

// ValidatePaymentMethodInput enforces the type-specific required fields:
// bank transfer and e-wallet need account number plus holder name, QRIS
// needs a QR image reference
func ValidatePaymentMethodInput(input PaymentMethodInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errs.NewValidationError(errs.ErrInvalidRequest, "name")
	}
	if !IsValidPaymentMethodType(input.Type) {
		return errs.NewValidationError(errs.ErrInvalidPaymentMethodType, "type")
	}

	switch PaymentMethodType(input.Type) {
	case TypeBankTransfer, TypeEWallet:
		var missing []string
		if input.AccountNumber == nil || strings.TrimSpace(*input.AccountNumber) == "" {
			missing = append(missing, "account_number")
		}
		if input.AccountName == nil || strings.TrimSpace(*input.AccountName) == "" {
			missing = append(missing, "account_name")
		}
		if len(missing) > 0 {
			return errs.NewValidationError(errs.ErrMissingAccountFields, missing...)
		}
	case TypeQRIS:
		if input.QRImageURL == nil || strings.TrimSpace(*input.QRImageURL) == "" {
			return errs.NewValidationError(errs.ErrMissingQRImage, "qr_image_url")
		}
	}

	return nil
}

// IsValidPaymentMethodType validates if the type is one of the allowed values
func IsValidPaymentMethodType(methodType string) bool {
	switch PaymentMethodType(methodType) {
	case TypeBankTransfer, TypeEWallet, TypeQRIS:
		return true
	default:
		return false
	}
}
