package controllers

import (
	"net/http"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profile *services.ProfileService
}

func NewProfileController(profile *services.ProfileService) *ProfileController {
	return &ProfileController{profile: profile}
}

// Get returns the profile together with its derived metrics.
func (ctl *ProfileController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile": ctl.profile.Get(),
		"derived": ctl.profile.Derived(),
	})
}

func (ctl *ProfileController) Update(c *gin.Context) {
	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := ctl.profile.Update(req)
	c.JSON(http.StatusOK, gin.H{
		"profile": p,
		"derived": ctl.profile.Derived(),
	})
}
