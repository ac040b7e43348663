package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/middlewares"
	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	moods *services.MoodService
}

func NewMoodController(moods *services.MoodService) *MoodController {
	return &MoodController{moods: moods}
}

func (ctl *MoodController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.moods.All())
}

func (ctl *MoodController) Add(c *gin.Context) {
	var req struct {
		Mood int    `json:"mood" binding:"required,min=1,max=5"`
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := ctl.moods.Add(req.Mood, req.Note)
	middlewares.TrackerOperations.WithLabelValues("moods", "add").Inc()
	c.JSON(http.StatusCreated, entry)
}

func (ctl *MoodController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.moods.TodayMoods())
}

func (ctl *MoodController) Week(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.moods.WeekMoods())
}
