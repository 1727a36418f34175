package services

import (
	"time"

	"barbersystem-backend/models"
	"barbersystem-backend/utils"
	"gorm.io/gorm"
)

// FinanceService derives the month-to-date metrics shown on the admin
// financial tab. Every method takes the reference instant explicitly; the
// month window runs from the first of that month with no upper bound.
type FinanceService struct {
	db *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{
		db: db,
	}
}

// Summary bundles the three metric cards of the financial tab.
type Summary struct {
	VisitCount    int64   `json:"visit_count"`
	Revenue       float64 `json:"revenue"`
	AverageTicket float64 `json:"average_ticket"`
}

// LedgerEntry is one row of the detailed statement grid.
type LedgerEntry struct {
	CustomerName string    `json:"customer_name"`
	ArrivedAt    time.Time `json:"arrived_at"`
	Price        float64   `json:"price"`
	Paid         bool      `json:"paid"`
}

// VisitCountThisMonth counts every arrival since the first of the month,
// paid or not.
func (s *FinanceService) VisitCountThisMonth(now time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Visit{}).
		Where("arrived_at >= ?", utils.BeginningOfMonth(now)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CollectedRevenueThisMonth sums the price of paid visits since the first
// of the month. No rows means 0.00, not an error.
func (s *FinanceService) CollectedRevenueThisMonth(now time.Time) (float64, error) {
	var revenue float64
	err := s.db.Model(&models.Visit{}).
		Where("arrived_at >= ? AND paid = ?", utils.BeginningOfMonth(now), true).
		Select("COALESCE(SUM(price), 0)").
		Row().Scan(&revenue)
	if err != nil {
		return 0, err
	}
	return revenue, nil
}

// AverageTicket is collected revenue over visit count, 0 when there were no
// visits this month.
func (s *FinanceService) AverageTicket(now time.Time) (float64, error) {
	summary, err := s.Summary(now)
	if err != nil {
		return 0, err
	}
	return summary.AverageTicket, nil
}

// Summary computes all three metrics. Count and sum are separate statements
// with no shared snapshot; a write racing between them can skew the average
// for one render, which the next reload corrects.
func (s *FinanceService) Summary(now time.Time) (*Summary, error) {
	count, err := s.VisitCountThisMonth(now)
	if err != nil {
		return nil, err
	}
	revenue, err := s.CollectedRevenueThisMonth(now)
	if err != nil {
		return nil, err
	}

	summary := Summary{
		VisitCount: count,
		Revenue:    revenue,
	}
	if count > 0 {
		summary.AverageTicket = revenue / float64(count)
	}
	return &summary, nil
}

// PaidVisitLedger lists every paid visit ever recorded, newest first. The
// statement grid is deliberately all-time while the metric cards above it
// are month-to-date.
func (s *FinanceService) PaidVisitLedger() ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := s.db.Model(&models.Visit{}).
		Where("paid = ?", true).
		Select("customer_name, arrived_at, price, paid").
		Order("arrived_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
