package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/middlewares"
	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{workouts: workouts}
}

func (ctl *WorkoutController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.workouts.All())
}

func (ctl *WorkoutController) Complete(c *gin.Context) {
	var req models.CompletedWorkout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w := ctl.workouts.Complete(req)
	middlewares.TrackerOperations.WithLabelValues("workouts", "complete").Inc()
	c.JSON(http.StatusCreated, w)
}

func (ctl *WorkoutController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.workouts.TodayWorkouts())
}

func (ctl *WorkoutController) Week(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.workouts.WeekWorkouts())
}
