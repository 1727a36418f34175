package services

import (
	"errors"
	"strings"
	"time"

	"barbersystem-backend/models"
	"gorm.io/gorm"
)

// QueueService handles the walk-in queue: kiosk check-ins plus the barber's
// close-out and payment actions.
type QueueService struct {
	db *gorm.DB
}

func NewQueueService(db *gorm.DB) *QueueService {
	return &QueueService{
		db: db,
	}
}

// CheckIn registers a new arrival. The name must be non-blank; nothing is
// persisted when validation fails.
func (s *QueueService) CheckIn(customerName string) (*models.Visit, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, NewValidationError("customer name is required")
	}

	visit := models.Visit{
		CustomerName: name,
		ArrivedAt:    time.Now(),
		Paid:         false,
		Price:        models.DefaultPrice,
	}
	if err := s.db.Create(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// ListVisits returns every visit, most recent arrival first. The shop is a
// single chair, so no pagination.
func (s *QueueService) ListVisits() ([]models.Visit, error) {
	var visits []models.Visit
	if err := s.db.Order("arrived_at DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

// MarkDeparted stamps the visit with the current time. Calling it again
// overwrites the stamp; the admin screen hides the button once a departure
// is shown.
func (s *QueueService) MarkDeparted(visitID uint) (*models.Visit, error) {
	var visit models.Visit
	if err := s.db.First(&visit, visitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}

	now := time.Now()
	visit.DepartedAt = &now
	if err := s.db.Save(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// MarkPaid flags the visit as paid. There is no refund path.
func (s *QueueService) MarkPaid(visitID uint) (*models.Visit, error) {
	var visit models.Visit
	if err := s.db.First(&visit, visitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}

	visit.Paid = true
	if err := s.db.Save(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}
