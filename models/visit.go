package models

import (
	"time"
)

// DefaultPrice is charged for every walk-in haircut. The admin screen has
// no price editor, so a visit keeps this value for life.
const DefaultPrice = 35.00

// Visit is one customer's pass through the shop: kiosk check-in, optional
// close-out and payment by the barber. Visits are never deleted.
type Visit struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerName string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	ArrivedAt    time.Time  `gorm:"not null;index" json:"arrived_at"`
	DepartedAt   *time.Time `json:"departed_at,omitempty"`
	Paid         bool       `gorm:"not null;default:false" json:"paid"`
	Price        float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}
