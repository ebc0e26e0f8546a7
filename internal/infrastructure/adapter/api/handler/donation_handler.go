package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	domainerr "github.com/masjid-digital/donation-processor/internal/domain/error"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	usecaseport "github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/dto"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/middleware"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// DonationHandler handles donation-related HTTP requests
type DonationHandler struct {
	donationService usecaseport.DonationUseCase
	logger          coreport.Logger
}

// NewDonationHandler creates a new donation handler instance
func NewDonationHandler(donationService usecaseport.DonationUseCase, logger coreport.Logger) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		logger:          logger,
	}
}

// Create handles POST /api/donations
func (h *DonationHandler) Create(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid donation request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	createReq := usecaseport.CreateDonationRequest{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		DonorPhone: req.DonorPhone,
		Amount:     req.Amount,
		Category:   req.Category,
		Notes:      req.Notes,
	}
	if req.PaymentMethodID != nil {
		id, err := uuid.Parse(*req.PaymentMethodID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid payment method ID format",
			})
			return
		}
		createReq.PaymentMethodID = &id
	}

	donation, err := h.donationService.Create(c.Request.Context(), createReq)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// Get handles GET /api/donations/:id
func (h *DonationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	donation, err := h.donationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// GetByCode handles GET /api/donations/code/:code, the donor receipt lookup
func (h *DonationHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")

	donation, err := h.donationService.GetByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// List handles GET /api/donations
func (h *DonationHandler) List(c *gin.Context) {
	filter, ok := h.parseListFilter(c)
	if !ok {
		return
	}

	page, err := h.donationService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	donations := make([]dto.DonationResponse, len(page.Donations))
	for i, donation := range page.Donations {
		donations[i] = dto.ToDonationResponse(donation)
	}

	c.JSON(http.StatusOK, dto.DonationListResponse{
		Donations: donations,
		Total:     page.Total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
}

// Confirm handles PUT /api/donations/:id/confirm
func (h *DonationHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	staffID, ok := middleware.StaffIDFromContext(c)
	if !ok {
		respondError(c, domainerr.ErrUnauthorized)
		return
	}

	donation, err := h.donationService.Confirm(c.Request.Context(), id, staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// Cancel handles PUT /api/donations/:id/cancel
func (h *DonationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	staffID, ok := middleware.StaffIDFromContext(c)
	if !ok {
		respondError(c, domainerr.ErrUnauthorized)
		return
	}

	// the body is optional, a cancel without a reason is still valid
	var req dto.CancelDonationRequest
	_ = c.ShouldBindJSON(&req)

	donation, err := h.donationService.Cancel(c.Request.Context(), id, staffID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// Stats handles GET /api/donations/stats
func (h *DonationHandler) Stats(c *gin.Context) {
	dateRange, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	stats, err := h.donationService.Stats(c.Request.Context(), dateRange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// parseListFilter reads status, category, date range, and pagination from
// the query string
func (h *DonationHandler) parseListFilter(c *gin.Context) (persistence.DonationFilter, bool) {
	filter := persistence.DonationFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Limit:    defaultListLimit,
	}

	dateRange, ok := h.parseDateRange(c)
	if !ok {
		return filter, false
	}
	filter.Range = dateRange

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit parameter",
			})
			return filter, false
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
		filter.Limit = limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid offset parameter",
			})
			return filter, false
		}
		filter.Offset = offset
	}

	return filter, true
}

// parseDateRange reads optional RFC 3339 from/to query parameters
func (h *DonationHandler) parseDateRange(c *gin.Context) (entity.DateRange, bool) {
	var dateRange entity.DateRange

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid from parameter, expected RFC 3339 timestamp",
			})
			return dateRange, false
		}
		dateRange.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid to parameter, expected RFC 3339 timestamp",
			})
			return dateRange, false
		}
		dateRange.To = &to
	}

	return dateRange, true
}

// parseIDParam extracts and validates the :id path parameter
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
