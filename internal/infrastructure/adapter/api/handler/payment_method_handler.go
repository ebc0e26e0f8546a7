package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerr "github.com/masjid-digital/donation-processor/internal/domain/error"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/domain/port/persistence"
	usecaseport "github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/dto"
)

// PaymentMethodHandler handles payment method registry HTTP requests
type PaymentMethodHandler struct {
	registry usecaseport.PaymentMethodUseCase
	logger   coreport.Logger
}

// NewPaymentMethodHandler creates a new payment method handler instance
func NewPaymentMethodHandler(registry usecaseport.PaymentMethodUseCase, logger coreport.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		registry: registry,
		logger:   logger,
	}
}

// List handles GET /api/payment-methods. The public listing only shows
// active methods; staff pass all=true to include retired ones.
func (h *PaymentMethodHandler) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	methods, err := h.registry.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.PaymentMethodResponse, len(methods))
	for i, method := range methods {
		responses[i] = dto.ToPaymentMethodResponse(method)
	}

	c.JSON(http.StatusOK, responses)
}

// Get handles GET /api/payment-methods/:id
func (h *PaymentMethodHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	method, err := h.registry.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// Create handles POST /api/payment-methods
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid payment method request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	method, err := h.registry.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// Update handles PUT /api/payment-methods/:id
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	method, err := h.registry.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// Deactivate handles PUT /api/payment-methods/:id/deactivate
func (h *PaymentMethodHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	method, err := h.registry.Deactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// Reorder handles PUT /api/payment-methods/reorder
func (h *PaymentMethodHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	updates := make([]persistence.DisplayOrderUpdate, len(req.Orders))
	for i, entry := range req.Orders {
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid payment method ID format",
			})
			return
		}
		updates[i] = persistence.DisplayOrderUpdate{
			ID:           id,
			DisplayOrder: entry.DisplayOrder,
		}
	}

	if err := h.registry.Reorder(c.Request.Context(), updates); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/payment-methods/:id
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.registry.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
