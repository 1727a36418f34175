package models

import "time"

const (
	PlanStatusActive    = "Active"
	PlanStatusCancelled = "Cancelled"
)

// Severity levels for a plan's due-date badge, computed on read and never
// stored.
const (
	SeverityNormal   = "normal"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
	SeverityNeutral  = "neutral"
)

// Plan is a monthly subscription. There is no update path: the admin screen
// only creates and deletes.
type Plan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	DueDate      time.Time `gorm:"not null;index" json:"due_date"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// PlanBadge is the derived urgency shown next to a plan in the admin list.
type PlanBadge struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}
