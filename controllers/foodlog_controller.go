package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
	"github.com/SillyCatLover68/NourishNine-Web-App/services"
)

type FoodLogController struct {
	Log *logger.Logger
	Hub *services.ProgressHub
}

func NewFoodLogController(log *logger.Logger, hub *services.ProgressHub) *FoodLogController {
	return &FoodLogController{Log: log, Hub: hub}
}

// POST /api/foodlog
//
// Always answers {"ok":true} once the payload validates: persistence is
// best-effort and failures are logged server-side only.
func (fc *FoodLogController) MirrorEntry(c *gin.Context) {
	var in services.FoodLogInput
	if err := c.ShouldBindJSON(&in); err != nil || in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing entry name"})
		return
	}
	userID := c.GetString("userID")

	if err := services.SaveFoodLogRecord(in, userID); err != nil {
		fc.Log.Warn("mirror write failed", "collection", "foodLogs", "err", err)
	}

	if userID != "" && fc.Hub != nil {
		fc.Hub.BroadcastProgress(userID, gin.H{
			"type":  "foodLogMirrored",
			"name":  in.Name,
			"entry": in,
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
