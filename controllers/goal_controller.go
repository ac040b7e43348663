package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

func (ctl *GoalController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"goals":    ctl.goals.Targets(),
		"progress": ctl.goals.TodayProgress(),
	})
}
