package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
	"github.com/SillyCatLover68/NourishNine-Web-App/services"
)

type ProfileController struct {
	Log *logger.Logger
}

func NewProfileController(log *logger.Logger) *ProfileController {
	return &ProfileController{Log: log}
}

// POST /api/profile (identity required)
func (pc *ProfileController) UpsertProfile(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing profile payload"})
		return
	}
	// The token is transport, not profile data.
	delete(payload, "idToken")

	userID := c.GetString("userID")
	if err := services.UpsertProfile(userID, payload); err != nil {
		pc.Log.Error("profile write failed", "userID", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/profile (identity required)
func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if err := services.DeleteProfile(userID); err != nil {
		pc.Log.Error("profile delete failed", "userID", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
