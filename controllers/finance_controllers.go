package controllers

import (
	"net/http"
	"time"

	"barbersystem-backend/services"
	"barbersystem-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FinanceController struct {
	finance *services.FinanceService
}

func NewFinanceController(db *gorm.DB) *FinanceController {
	return &FinanceController{finance: services.NewFinanceService(db)}
}

// GetSummary -> the three metric cards of the financial tab
func (fc *FinanceController) GetSummary(c *gin.Context) {
	summary, err := fc.finance.Summary(time.Now())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Financial summary", gin.H{
		"visit_count":            summary.VisitCount,
		"revenue":                summary.Revenue,
		"revenue_display":        utils.FormatCurrency(summary.Revenue),
		"average_ticket":         summary.AverageTicket,
		"average_ticket_display": utils.FormatCurrency(summary.AverageTicket),
	})
}

// GetLedger -> the detailed statement grid: every paid visit, all-time
func (fc *FinanceController) GetLedger(c *gin.Context) {
	entries, err := fc.finance.PaidVisitLedger()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Paid visit ledger", entries)
}
