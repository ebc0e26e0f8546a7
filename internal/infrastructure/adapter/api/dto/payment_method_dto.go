package dto

import (
	"time"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
)

// PaymentMethodRequest represents the API request for creating or updating
// a payment method
type PaymentMethodRequest struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=bank_transfer ewallet qris"`
	AccountNumber *string `json:"accountNumber"`
	AccountName   *string `json:"accountName"`
	QRImageURL    *string `json:"qrImageUrl"`
	Instructions  string  `json:"instructions"`
	DisplayOrder  int     `json:"displayOrder"`
}

// ReorderRequest carries a batch of display-order changes
type ReorderRequest struct {
	Orders []ReorderEntry `json:"orders" binding:"required,min=1,dive"`
}

// ReorderEntry is one payment method's new display position
type ReorderEntry struct {
	ID           string `json:"id" binding:"required,uuid"`
	DisplayOrder int    `json:"displayOrder"`
}

// PaymentMethodResponse represents a payment method in API responses
type PaymentMethodResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	AccountNumber *string   `json:"accountNumber,omitempty"`
	AccountName   *string   `json:"accountName,omitempty"`
	QRImageURL    *string   `json:"qrImageUrl,omitempty"`
	Instructions  string    `json:"instructions,omitempty"`
	DisplayOrder  int       `json:"displayOrder"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToPaymentMethodResponse maps a payment method entity to its API representation
func ToPaymentMethodResponse(p *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Type:          string(p.Type),
		AccountNumber: p.AccountNumber,
		AccountName:   p.AccountName,
		QRImageURL:    p.QRImageURL,
		Instructions:  p.Instructions,
		DisplayOrder:  p.DisplayOrder,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToInput maps the request to the domain input type
func (r PaymentMethodRequest) ToInput() entity.PaymentMethodInput {
	return entity.PaymentMethodInput{
		Name:          r.Name,
		Type:          r.Type,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		QRImageURL:    r.QRImageURL,
		Instructions:  r.Instructions,
		DisplayOrder:  r.DisplayOrder,
	}
}
