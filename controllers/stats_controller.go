package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/middlewares"
	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

func (ctl *StatsController) GetToday(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.stats.Today())
}

func (ctl *StatsController) UpdateStat(c *gin.Context) {
	var req struct {
		Field string  `json:"field" binding:"required,oneof=steps water calories sleep weight"`
		Value float64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := ctl.stats.UpdateStat(req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	middlewares.TrackerOperations.WithLabelValues("stats", "update").Inc()
	c.JSON(http.StatusOK, st)
}

func (ctl *StatsController) IncrementStat(c *gin.Context) {
	var req struct {
		Field  string   `json:"field" binding:"required,oneof=steps water calories sleep weight"`
		Amount *float64 `json:"amount"` // defaults to 1
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount := 1.0
	if req.Amount != nil {
		amount = *req.Amount
	}

	st, err := ctl.stats.IncrementStat(req.Field, amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	middlewares.TrackerOperations.WithLabelValues("stats", "increment").Inc()
	c.JSON(http.StatusOK, st)
}

func (ctl *StatsController) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.stats.History())
}
