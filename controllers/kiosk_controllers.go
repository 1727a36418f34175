package controllers

import (
	"net/http"

	"barbersystem-backend/services"
	"barbersystem-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type KioskController struct {
	queue *services.QueueService
}

func NewKioskController(db *gorm.DB) *KioskController {
	return &KioskController{queue: services.NewQueueService(db)}
}

// CheckIn -> the kiosk tablet's single action: put a name in the queue
func (kc *KioskController) CheckIn(c *gin.Context) {
	type reqBody struct {
		CustomerName string `json:"customer_name"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	visit, err := kc.queue.CheckIn(req.CustomerName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New check-in (ID=%d) for %s", visit.ID, visit.CustomerName)

	utils.RespondJSON(c, http.StatusCreated, "Checked in", visit)
}
