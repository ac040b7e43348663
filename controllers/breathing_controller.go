package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type BreathingController struct {
	breathing *services.BreathingService
	catalog   *services.CatalogService
}

func NewBreathingController(breathing *services.BreathingService, catalog *services.CatalogService) *BreathingController {
	return &BreathingController{breathing: breathing, catalog: catalog}
}

// Start begins a session for one of the catalog exercises. Phase
// transitions stream out over the websocket event feed.
func (ctl *BreathingController) Start(c *gin.Context) {
	var req struct {
		ExerciseID int `json:"exerciseId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ex, ok := ctl.catalog.BreathingExercise(req.ExerciseID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "breathing exercise not found"})
		return
	}
	c.JSON(http.StatusOK, ctl.breathing.Start(ex))
}

func (ctl *BreathingController) Stop(c *gin.Context) {
	ctl.breathing.Stop()
	c.Status(http.StatusNoContent)
}

func (ctl *BreathingController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.breathing.Status())
}
