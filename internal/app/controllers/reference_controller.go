package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/app/services"
	"github.com/temidayo/servecorps/internal/middleware"
)

// ReferenceController serves read-only reference data
type ReferenceController struct {
	referenceService *services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService *services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// Zones retrieves all zones
// @Summary List zones
// @Description Retrieves all zones for search and upload forms
// @Tags reference
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Zone} "Zones retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /zones [get]
func (c *ReferenceController) Zones(ctx *gin.Context) {
	zones, err := c.referenceService.Zones(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      zones,
		Timestamp: time.Now(),
	})
}

// Departments retrieves all service departments
// @Summary List service departments
// @Description Retrieves all service departments
// @Tags reference
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ServiceDepartment} "Departments retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *ReferenceController) Departments(ctx *gin.Context) {
	departments, err := c.referenceService.Departments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departments,
		Timestamp: time.Now(),
	})
}
