package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
)

// DonationCategory represents the purpose a donation is pledged against
type DonationCategory string

// Donation categories
const (
	CategoryInfaq       DonationCategory = "infaq"
	CategorySedekah     DonationCategory = "sedekah"
	CategoryZakat       DonationCategory = "zakat"
	CategoryWakaf       DonationCategory = "wakaf"
	CategoryOperational DonationCategory = "operational"
)

// DonationStatus defines possible status values for a donation
type DonationStatus string

// Donation statuses. Pending is the only non-terminal state.
const (
	StatusPending   DonationStatus = "pending"
	StatusConfirmed DonationStatus = "confirmed"
	StatusCancelled DonationStatus = "cancelled"
)

// Donation represents a single pledge moving through the
// pending -> confirmed | cancelled lifecycle
type Donation struct {
	ID              uuid.UUID        // Unique identifier
	Code            string           // Donor-facing donation code, immutable once assigned
	DonorName       string           // Name supplied by the donor
	DonorEmail      *string          // Optional contact email
	DonorPhone      *string          // Optional contact phone
	Amount          int64            // Amount in the smallest currency unit, immutable after creation
	Category        DonationCategory // Purpose of the donation
	PaymentMethodID *uuid.UUID       // Optional reference to a payment method
	Notes           string           // Free-text notes from the donor
	Status          DonationStatus   // Current lifecycle state
	CancelReason    string           // Advisory reason recorded on cancellation
	ConfirmedBy     *uuid.UUID       // Staff identity that settled the donation
	ConfirmedAt     *time.Time       // Set only on transition to confirmed
	CreatedAt       time.Time        // When the pledge was submitted
	UpdatedAt       time.Time        // When the record last changed
}

// NewDonationInput carries the donor-supplied fields for a new pledge
type NewDonationInput struct {
	DonorName       string
	DonorEmail      *string
	DonorPhone      *string
	Amount          int64
	Category        string
	PaymentMethodID *uuid.UUID
	Notes           string
}

// NewDonation creates a pending donation with basic validation.
// The donation code is assigned by the caller before persisting.
func NewDonation(input NewDonationInput, minimumAmount int64, timeProvider coreport.TimeProvider) (*Donation, error) {
	if strings.TrimSpace(input.DonorName) == "" {
		return nil, errs.NewValidationError(errs.ErrInvalidDonorName, "donor_name")
	}
	if input.Amount < minimumAmount {
		return nil, errs.NewValidationError(errs.ErrAmountBelowMinimum, "amount")
	}
	if !IsValidCategory(input.Category) {
		return nil, errs.NewValidationError(errs.ErrInvalidCategory, "category")
	}

	now := timeProvider.Now()
	return &Donation{
		ID:              uuid.New(),
		DonorName:       strings.TrimSpace(input.DonorName),
		DonorEmail:      input.DonorEmail,
		DonorPhone:      input.DonorPhone,
		Amount:          input.Amount,
		Category:        DonationCategory(input.Category),
		PaymentMethodID: input.PaymentMethodID,
		Notes:           input.Notes,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Confirm transitions a pending donation to confirmed.
// Terminal states reject the transition deterministically so retried
// requests cannot double-settle a donation.
func (d *Donation) Confirm(staffID uuid.UUID, timeProvider coreport.TimeProvider) error {
	if err := d.ensurePending("confirm"); err != nil {
		return err
	}

	now := timeProvider.Now()
	d.Status = StatusConfirmed
	d.ConfirmedBy = &staffID
	d.ConfirmedAt = &now
	d.UpdatedAt = now
	return nil
}

// Cancel transitions a pending donation to cancelled. The confirmation
// timestamp stays nil; the reason is advisory only.
func (d *Donation) Cancel(staffID uuid.UUID, reason string, timeProvider coreport.TimeProvider) error {
	if err := d.ensurePending("cancel"); err != nil {
		return err
	}

	d.Status = StatusCancelled
	d.ConfirmedBy = &staffID
	d.CancelReason = reason
	d.UpdatedAt = timeProvider.Now()
	return nil
}

// ensurePending guards state transitions out of terminal states
func (d *Donation) ensurePending(attempted string) error {
	switch d.Status {
	case StatusPending:
		return nil
	case StatusConfirmed:
		return errs.NewStateTransitionError(d.ID.String(), string(d.Status), attempted, errs.ErrAlreadyConfirmed)
	case StatusCancelled:
		return errs.NewStateTransitionError(d.ID.String(), string(d.Status), attempted, errs.ErrAlreadyCancelled)
	default:
		return errs.NewStateTransitionError(d.ID.String(), string(d.Status), attempted, errs.ErrInternalServer)
	}
}

// IsTerminal reports whether the donation can no longer change state
func (d *Donation) IsTerminal() bool {
	return d.Status == StatusConfirmed || d.Status == StatusCancelled
}

// Categories returns the closed set of donation categories
func Categories() []DonationCategory {
	return []DonationCategory{
		CategoryInfaq,
		CategorySedekah,
		CategoryZakat,
		CategoryWakaf,
		CategoryOperational,
	}
}

// IsValidCategory validates if the category is one of the allowed values
func IsValidCategory(category string) bool {
	switch DonationCategory(category) {
	case CategoryInfaq, CategorySedekah, CategoryZakat, CategoryWakaf, CategoryOperational:
		return true
	default:
		return false
	}
}

// IsValidStatus validates if the status is one of the allowed values
func IsValidStatus(status string) bool {
	switch DonationStatus(status) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
