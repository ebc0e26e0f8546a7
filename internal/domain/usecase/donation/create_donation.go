package donation

import (
	"context"
	"errors"
	"fmt"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	"github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
)

// maxCodeAttempts bounds the collision retry loop during code assignment
const maxCodeAttempts = 5

// Intake handles donor-facing donation creation: validation, code
// assignment, and persistence of the pending record
type Intake struct {
	donationRepo      persistence.DonationRepository
	paymentMethodRepo persistence.PaymentMethodRepository
	validator         *Validator
	codeGenerator     coreport.CodeGenerator
	codeLength        int
	timeProvider      coreport.TimeProvider
	logger            coreport.Logger
}

// NewIntake creates the donation intake component
func NewIntake(
	donationRepo persistence.DonationRepository,
	paymentMethodRepo persistence.PaymentMethodRepository,
	validator *Validator,
	codeGenerator coreport.CodeGenerator,
	codeLength int,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Intake {
	return &Intake{
		donationRepo:      donationRepo,
		paymentMethodRepo: paymentMethodRepo,
		validator:         validator,
		codeGenerator:     codeGenerator,
		codeLength:        codeLength,
		timeProvider:      timeProvider,
		logger:            logger,
	}
}

// Create validates the request, resolves the optional payment method
// reference, assigns a unique donation code, and stores the pledge as
// pending. A referenced method may be inactive; it only has to exist.
func (i *Intake) Create(ctx context.Context, req usecase.CreateDonationRequest) (*entity.Donation, error) {
	if err := i.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	if req.PaymentMethodID != nil {
		if _, err := i.paymentMethodRepo.GetByID(ctx, *req.PaymentMethodID); err != nil {
			return nil, fmt.Errorf("resolving payment method: %w", err)
		}
	}

	donation, err := entity.NewDonation(entity.NewDonationInput{
		DonorName:       req.DonorName,
		DonorEmail:      req.DonorEmail,
		DonorPhone:      req.DonorPhone,
		Amount:          req.Amount,
		Category:        req.Category,
		PaymentMethodID: req.PaymentMethodID,
		Notes:           req.Notes,
	}, i.validator.MinimumAmount(), i.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := i.persistWithFreshCode(ctx, donation); err != nil {
		return nil, err
	}

	i.logger.Info("Donation created", map[string]any{
		"donation_id":   donation.ID.String(),
		"donation_code": donation.Code,
		"category":      string(donation.Category),
		"amount":        donation.Amount,
	})
	return donation, nil
}

// persistWithFreshCode assigns a generated code and stores the donation,
// regenerating on the rare collision. The unique index on the code column
// is the real guarantee; the retry just keeps collisions invisible to the
// donor.
func (i *Intake) persistWithFreshCode(ctx context.Context, donation *entity.Donation) error {
	var lastErr error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := i.codeGenerator.NewCode(i.codeLength)
		if err != nil {
			return fmt.Errorf("generating donation code: %w", err)
		}
		donation.Code = code

		err = i.donationRepo.Create(ctx, donation)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrCodeCollision) {
			return err
		}

		lastErr = err
		i.logger.Warn("Donation code collision, regenerating", map[string]any{
			"attempt": attempt + 1,
			"code":    code,
		})
	}

	i.logger.Error("Exhausted donation code attempts", map[string]any{
		"attempts": maxCodeAttempts,
	})
	return fmt.Errorf("%w: %d attempts", lastErr, maxCodeAttempts)
}
