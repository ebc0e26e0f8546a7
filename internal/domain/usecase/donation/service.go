package donation

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	"github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
)

// Service ties together the intake, confirmation workflow, and stats engine
// as one DonationUseCase implementation
type Service struct {
	intake    *Intake
	workflow  *Workflow
	stats     *StatsEngine
	validator *Validator
	repo      persistence.DonationRepository
	logger    coreport.Logger
}

// Config carries the ledger's configurable intake rules
type Config struct {
	MinimumAmount int64
	CodeLength    int
	StatsMonths   int
}

// NewService creates the donation service
func NewService(
	uow persistence.UnitOfWork,
	donationRepo persistence.DonationRepository,
	paymentMethodRepo persistence.PaymentMethodRepository,
	codeGenerator coreport.CodeGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	validator := NewValidator(cfg.MinimumAmount)
	return &Service{
		intake:    NewIntake(donationRepo, paymentMethodRepo, validator, codeGenerator, cfg.CodeLength, timeProvider, logger),
		workflow:  NewWorkflow(uow, timeProvider, logger),
		stats:     NewStatsEngine(uow, timeProvider, logger, cfg.StatsMonths),
		validator: validator,
		repo:      donationRepo,
		logger:    logger,
	}
}

// Create validates and stores a new pending donation
func (s *Service) Create(ctx context.Context, req usecase.CreateDonationRequest) (*entity.Donation, error) {
	return s.intake.Create(ctx, req)
}

// Get retrieves a donation by identifier
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByCode retrieves a donation by its donor-facing code
func (s *Service) GetByCode(ctx context.Context, code string) (*entity.Donation, error) {
	return s.repo.GetByCode(ctx, code)
}

// List returns donations matching the filter, newest first
func (s *Service) List(ctx context.Context, filter persistence.DonationFilter) (*usecase.DonationPage, error) {
	if err := s.validator.ValidateListFilter(filter.Status, filter.Category); err != nil {
		return nil, err
	}

	donations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &usecase.DonationPage{Donations: donations, Total: total}, nil
}

// Confirm settles a pending donation on behalf of staff
func (s *Service) Confirm(ctx context.Context, donationID, staffID uuid.UUID) (*entity.Donation, error) {
	return s.workflow.Confirm(ctx, donationID, staffID)
}

// Cancel voids a pending donation on behalf of staff
func (s *Service) Cancel(ctx context.Context, donationID, staffID uuid.UUID, reason string) (*entity.Donation, error) {
	return s.workflow.Cancel(ctx, donationID, staffID, reason)
}

// Stats recomputes the aggregate view from the ledger
func (s *Service) Stats(ctx context.Context, dateRange entity.DateRange) (*entity.DonationStats, error) {
	return s.stats.Stats(ctx, dateRange)
}

// HTTPStatus maps domain errors to HTTP status codes at the API boundary
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsConflictError(err):
		return http.StatusConflict
	case errs.IsStorageError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
