package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (ctl *CatalogController) Workouts(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.catalog.Workouts())
}

func (ctl *CatalogController) Meals(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.catalog.MealSuggestions())
}

func (ctl *CatalogController) Breathing(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.catalog.BreathingExercises())
}

func (ctl *CatalogController) Moods(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.catalog.MoodOptions())
}

func (ctl *CatalogController) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.catalog.RandomQuote())
}

func (ctl *CatalogController) Tip(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tip": ctl.catalog.RandomTip()})
}
