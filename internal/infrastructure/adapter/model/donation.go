package model

import (
	"time"

	"github.com/google/uuid"
)

// Donation represents the database model for donation ledger records
type Donation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code            string     `gorm:"uniqueIndex;not null;size:50"`
	DonorName       string     `gorm:"not null;size:255"`
	DonorEmail      *string    `gorm:"size:255"`
	DonorPhone      *string    `gorm:"size:50"`
	Amount          int64      `gorm:"not null"`
	Category        string     `gorm:"not null;size:50;index"`
	PaymentMethodID *uuid.UUID `gorm:"type:uuid;index"`
	Notes           string     `gorm:"type:text"`
	Status          string     `gorm:"not null;size:50;index"`
	CancelReason    string     `gorm:"type:text"`
	ConfirmedBy     *uuid.UUID `gorm:"type:uuid"`
	ConfirmedAt     *time.Time
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`

	// RESTRICT keeps historical donations pointing at their method;
	// deleting a referenced method must fail, never cascade
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Donation
func (Donation) TableName() string {
	return "donations"
}
