package controllers

import (
	"net/http"
	"strconv"

	"github.com/Uviii9p/Health-Hub/middlewares"
	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

func (ctl *MealController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.meals.Today())
}

func (ctl *MealController) Add(c *gin.Context) {
	var req models.Meal
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MealTime == "" {
		req.MealTime = models.MealSnack
	}
	if req.Image == "" {
		req.Image = "🍽️"
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := ctl.meals.Add(req)
	middlewares.TrackerOperations.WithLabelValues("meals", "add").Inc()
	c.JSON(http.StatusCreated, meal)
}

func (ctl *MealController) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if !ctl.meals.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	middlewares.TrackerOperations.WithLabelValues("meals", "remove").Inc()
	c.Status(http.StatusNoContent)
}

func (ctl *MealController) Nutrition(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.meals.Totals())
}
