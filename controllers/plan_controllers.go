package controllers

import (
	"net/http"
	"strconv"
	"time"

	"barbersystem-backend/models"
	"barbersystem-backend/services"
	"barbersystem-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanController struct {
	plans *services.PlanService
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{plans: services.NewPlanService(db)}
}

// planItem is a plan plus its derived urgency badge for the admin list.
type planItem struct {
	models.Plan
	Badge models.PlanBadge `json:"badge"`
}

// CreatePlan -> new subscription from the admin form
func (pc *PlanController) CreatePlan(c *gin.Context) {
	type reqBody struct {
		CustomerName string `json:"customer_name"`
		DueDate      string `json:"due_date" binding:"required"`
		Status       string `json:"status"`
		Notes        string `json:"notes"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dueDate, err := time.ParseInLocation("2006-01-02", req.DueDate, time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.PlanStatusActive
	}

	plan, err := pc.plans.CreatePlan(req.CustomerName, dueDate, status, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Plan %d created for %s (due %s)", plan.ID, plan.CustomerName, req.DueDate)

	utils.RespondJSON(c, http.StatusCreated, "Plan created", plan)
}

// GetAllPlans -> soonest due date first, each with its badge
func (pc *PlanController) GetAllPlans(c *gin.Context) {
	plans, err := pc.plans.ListPlans()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	today := time.Now()
	items := make([]planItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, planItem{
			Plan:  plan,
			Badge: services.Classify(plan, today),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "List of plans", items)
}

// DeletePlan -> hard delete; the only way to change a plan is delete+recreate
func (pc *PlanController) DeletePlan(c *gin.Context) {
	idStr := c.Param("plan_id")
	id, _ := strconv.Atoi(idStr)

	if err := pc.plans.DeletePlan(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Plan deleted", gin.H{"plan_id": id})
}
