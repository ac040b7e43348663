package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

func (ctl *AnalyticsController) Summary(c *gin.Context) {
	sum, err := ctl.analytics.Summary(c.DefaultQuery("range", "week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (ctl *AnalyticsController) Moods(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.analytics.MoodDistribution())
}

func (ctl *AnalyticsController) Streak(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"streak": ctl.analytics.Streak()})
}
