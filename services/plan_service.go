package services

import (
	"strings"
	"time"

	"barbersystem-backend/models"
	"barbersystem-backend/utils"
	"gorm.io/gorm"
)

// PlanService manages the monthly subscription records. Plans are created
// and deleted by the admin screen; there is no update path.
type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{
		db: db,
	}
}

func (s *PlanService) CreatePlan(customerName string, dueDate time.Time, status, notes string) (*models.Plan, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, NewValidationError("customer name is required")
	}
	if status != models.PlanStatusActive && status != models.PlanStatusCancelled {
		return nil, NewValidationError("status must be Active or Cancelled")
	}

	plan := models.Plan{
		CustomerName: name,
		DueDate:      dueDate,
		Status:       status,
		Notes:        notes,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListPlans returns all plans ordered by due date, soonest first.
func (s *PlanService) ListPlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Order("due_date ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// DeletePlan permanently removes a plan. Deleting an id that is already
// gone reports ErrPlanNotFound.
func (s *PlanService) DeletePlan(planID uint) error {
	result := s.db.Delete(&models.Plan{}, planID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Classify derives the urgency badge for a plan as of today. Pure function,
// no I/O: the badge is computed on every read, never stored.
//
// A plan is overdue only when its due date is strictly in the past; due
// today through due in three days counts as "DUE SOON".
func Classify(plan models.Plan, today time.Time) models.PlanBadge {
	if plan.Status != models.PlanStatusActive {
		return models.PlanBadge{Label: plan.Status, Severity: models.SeverityNeutral}
	}

	days := utils.DaysBetween(today, plan.DueDate)
	switch {
	case days < 0:
		return models.PlanBadge{Label: "OVERDUE", Severity: models.SeverityCritical}
	case days <= 3:
		return models.PlanBadge{Label: "DUE SOON", Severity: models.SeverityWarning}
	default:
		return models.PlanBadge{Label: models.PlanStatusActive, Severity: models.SeverityNormal}
	}
}
