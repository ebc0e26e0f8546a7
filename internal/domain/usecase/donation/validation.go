package donation

import (
	"strings"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	"github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
)

// Validator checks incoming donation requests against the configured
// intake rules before anything touches the ledger
type Validator struct {
	minimumAmount int64
}

// NewValidator creates a Validator with the configured minimum amount
func NewValidator(minimumAmount int64) *Validator {
	return &Validator{minimumAmount: minimumAmount}
}

// MinimumAmount returns the configured donation floor
func (v *Validator) MinimumAmount() int64 {
	return v.minimumAmount
}

// ValidateCreate validates a donor pledge. All failing fields are collected
// so the API can surface field-level detail in one response.
func (v *Validator) ValidateCreate(req usecase.CreateDonationRequest) error {
	if strings.TrimSpace(req.DonorName) == "" {
		return errs.NewValidationError(errs.ErrInvalidDonorName, "donor_name")
	}
	if req.Amount < v.minimumAmount {
		return errs.NewValidationError(errs.ErrAmountBelowMinimum, "amount")
	}
	if !entity.IsValidCategory(req.Category) {
		return errs.NewValidationError(errs.ErrInvalidCategory, "category")
	}
	return nil
}

// ValidateListFilter rejects unknown status or category filter values so a
// typo doesn't silently return an empty staff view
func (v *Validator) ValidateListFilter(status, category string) error {
	if status != "" && !entity.IsValidStatus(status) {
		return errs.NewValidationError(errs.ErrInvalidRequest, "status")
	}
	if category != "" && !entity.IsValidCategory(category) {
		return errs.NewValidationError(errs.ErrInvalidCategory, "category")
	}
	return nil
}
