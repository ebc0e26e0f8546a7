package dto

import (
	"time"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
)

// CreateDonationRequest represents the API request for submitting a pledge
type CreateDonationRequest struct {
	DonorName       string  `json:"donorName" binding:"required"`
	DonorEmail      *string `json:"donorEmail" binding:"omitempty,email"`
	DonorPhone      *string `json:"donorPhone" binding:"omitempty"`
	Amount          int64   `json:"amount" binding:"required,gt=0"`
	Category        string  `json:"category" binding:"required"`
	PaymentMethodID *string `json:"paymentMethodId" binding:"omitempty,uuid"`
	Notes           string  `json:"notes"`
}

// CancelDonationRequest carries the advisory reason for a cancellation
type CancelDonationRequest struct {
	Reason string `json:"reason"`
}

// DonationResponse represents a donation in API responses
type DonationResponse struct {
	ID              string     `json:"id"`
	Code            string     `json:"code"`
	DonorName       string     `json:"donorName"`
	DonorEmail      *string    `json:"donorEmail,omitempty"`
	DonorPhone      *string    `json:"donorPhone,omitempty"`
	Amount          int64      `json:"amount"`
	Category        string     `json:"category"`
	PaymentMethodID *string    `json:"paymentMethodId,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	CancelReason    string     `json:"cancelReason,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// DonationListResponse is a paginated donation listing
type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// CategoryTotalResponse is one category's aggregate slice
type CategoryTotalResponse struct {
	Total int64 `json:"total"`
	Count int64 `json:"count"`
}

// MonthlyTotalResponse is one month's aggregate slice
type MonthlyTotalResponse struct {
	Total int64 `json:"total"`
	Count int64 `json:"count"`
}

// StatsResponse represents the aggregate view of the ledger
type StatsResponse struct {
	TotalAmount    int64                            `json:"totalAmount"`
	TotalCount     int64                            `json:"totalCount"`
	PendingCount   int64                            `json:"pendingCount"`
	ConfirmedCount int64                            `json:"confirmedCount"`
	CancelledCount int64                            `json:"cancelledCount"`
	ByCategory     map[string]CategoryTotalResponse `json:"byCategory"`
	ByMonth        map[string]MonthlyTotalResponse  `json:"byMonth"`
}

// ToDonationResponse maps a donation entity to its API representation.
// Staff identity is deliberately not exposed.
func ToDonationResponse(d *entity.Donation) DonationResponse {
	resp := DonationResponse{
		ID:           d.ID.String(),
		Code:         d.Code,
		DonorName:    d.DonorName,
		DonorEmail:   d.DonorEmail,
		DonorPhone:   d.DonorPhone,
		Amount:       d.Amount,
		Category:     string(d.Category),
		Notes:        d.Notes,
		Status:       string(d.Status),
		CancelReason: d.CancelReason,
		ConfirmedAt:  d.ConfirmedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.PaymentMethodID != nil {
		id := d.PaymentMethodID.String()
		resp.PaymentMethodID = &id
	}
	return resp
}

// ToStatsResponse maps the stats entity to its API representation
func ToStatsResponse(stats *entity.DonationStats) StatsResponse {
	resp := StatsResponse{
		TotalAmount:    stats.TotalAmount,
		TotalCount:     stats.TotalCount,
		PendingCount:   stats.PendingCount,
		ConfirmedCount: stats.ConfirmedCount,
		CancelledCount: stats.CancelledCount,
		ByCategory:     make(map[string]CategoryTotalResponse, len(stats.ByCategory)),
		ByMonth:        make(map[string]MonthlyTotalResponse, len(stats.ByMonth)),
	}
	for category, slice := range stats.ByCategory {
		resp.ByCategory[string(category)] = CategoryTotalResponse{
			Total: slice.Total,
			Count: slice.Count,
		}
	}
	for month, slice := range stats.ByMonth {
		resp.ByMonth[month] = MonthlyTotalResponse{
			Total: slice.Total,
			Count: slice.Count,
		}
	}
	return resp
}
