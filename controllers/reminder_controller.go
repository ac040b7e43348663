package controllers

import (
	"net/http"
	"strconv"

	"github.com/Uviii9p/Health-Hub/middlewares"
	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{reminders: reminders}
}

func (ctl *ReminderController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.reminders.All())
}

func (ctl *ReminderController) Add(c *gin.Context) {
	var req models.Reminder
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type == "" {
		req.Type = models.ReminderCustom
	}
	if req.Repeat == "" {
		req.Repeat = models.RepeatNone
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := ctl.reminders.Add(req)
	middlewares.TrackerOperations.WithLabelValues("reminders", "add").Inc()
	c.JSON(http.StatusCreated, r)
}

func (ctl *ReminderController) Update(c *gin.Context) {
	id, err := reminderID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder id"})
		return
	}

	var patch models.ReminderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := patch.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, ok := ctl.reminders.Update(id, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	middlewares.TrackerOperations.WithLabelValues("reminders", "update").Inc()
	c.JSON(http.StatusOK, r)
}

func (ctl *ReminderController) Toggle(c *gin.Context) {
	id, err := reminderID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder id"})
		return
	}

	r, ok := ctl.reminders.ToggleComplete(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	middlewares.TrackerOperations.WithLabelValues("reminders", "toggle").Inc()
	c.JSON(http.StatusOK, r)
}

func (ctl *ReminderController) Delete(c *gin.Context) {
	id, err := reminderID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder id"})
		return
	}

	if !ctl.reminders.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	middlewares.TrackerOperations.WithLabelValues("reminders", "delete").Inc()
	c.Status(http.StatusNoContent)
}

func reminderID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
