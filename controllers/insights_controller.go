package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	insights *services.InsightsService
}

func NewInsightsController(insights *services.InsightsService) *InsightsController {
	return &InsightsController{insights: insights}
}

func (ctl *InsightsController) Weekly(c *gin.Context) {
	list, err := ctl.insights.Weekly()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
