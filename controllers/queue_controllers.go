package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"barbersystem-backend/services"
	"barbersystem-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QueueController struct {
	queue *services.QueueService
}

func NewQueueController(db *gorm.DB) *QueueController {
	return &QueueController{queue: services.NewQueueService(db)}
}

// GetQueue -> every visit, most recent arrival first
func (qc *QueueController) GetQueue(c *gin.Context) {
	visits, err := qc.queue.ListVisits()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Queue", visits)
}

// MarkDeparted -> the barber finished the haircut
func (qc *QueueController) MarkDeparted(c *gin.Context) {
	idStr := c.Param("visit_id")
	id, _ := strconv.Atoi(idStr)

	visit, err := qc.queue.MarkDeparted(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Visit %d marked departed", visit.ID)

	utils.RespondJSON(c, http.StatusOK, "Visit marked departed", visit)
}

// MarkPaid -> the barber received the money
func (qc *QueueController) MarkPaid(c *gin.Context) {
	idStr := c.Param("visit_id")
	id, _ := strconv.Atoi(idStr)

	visit, err := qc.queue.MarkPaid(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Visit %d marked paid", visit.ID)

	utils.RespondJSON(c, http.StatusOK, "Visit marked paid", visit)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation -> 400, unknown id -> 404, anything else is a store failure.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrVisitNotFound), errors.Is(err, services.ErrPlanNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
