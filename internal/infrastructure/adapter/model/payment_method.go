package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents the database model for payment channels
type PaymentMethod struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null;size:255"`
	Type          string    `gorm:"not null;size:50"`
	AccountNumber *string   `gorm:"size:100"`
	AccountName   *string   `gorm:"size:255"`
	QRImageURL    *string   `gorm:"size:500"`
	Instructions  string    `gorm:"type:text"`
	DisplayOrder  int       `gorm:"not null;default:0;index"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentMethod
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
