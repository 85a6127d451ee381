package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/app/services"
	"github.com/temidayo/servecorps/internal/middleware"
	"github.com/temidayo/servecorps/internal/pkg/helpers"
)

// GraduateController handles graduate profile and review pipeline operations
type GraduateController struct {
	graduateService *services.GraduateService
}

// NewGraduateController creates a new GraduateController
func NewGraduateController(graduateService *services.GraduateService) *GraduateController {
	return &GraduateController{
		graduateService: graduateService,
	}
}

func parseGraduateID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid graduate ID")
		errorDetail = errorDetail.WithDetails("Graduate ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// List retrieves a page of graduate profiles
// @Summary List graduate profiles
// @Description Retrieves graduate profiles with pagination, newest first
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Graduates retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduates [get]
func (c *GraduateController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	profiles, total, err := c.graduateService.List(ctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      profiles,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one graduate profile
// @Summary Get graduate by ID
// @Description Retrieves a specific graduate profile with its department
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Graduate ID"
// @Success 200 {object} dto.APIResponse{data=models.GraduateProfile} "Graduate retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid graduate ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduates/{id} [get]
func (c *GraduateController) GetByID(ctx *gin.Context) {
	id, ok := parseGraduateID(ctx)
	if !ok {
		return
	}

	profile, err := c.graduateService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// Transition moves a graduate through the review pipeline
// @Summary Change application status
// @Description Moves a graduate to a new pipeline state. Moving to SERVING requires an assigned department and stamps the service start date.
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Graduate ID"
// @Param request body dto.StatusTransitionRequest true "Target status and optional department"
// @Success 200 {object} dto.APIResponse{data=models.GraduateProfile} "Status changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not an office account"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduates/{id}/status [post]
func (c *GraduateController) Transition(ctx *gin.Context) {
	id, ok := parseGraduateID(ctx)
	if !ok {
		return
	}

	var req dto.StatusTransitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.graduateService.Transition(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// Assign ties a graduate to a staff request
// @Summary Assign graduate to a staff request
// @Description Counts the assignment against the request and places the graduate in the requesting department
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Graduate ID"
// @Param request body dto.AssignmentRequest true "Staff request to fulfill"
// @Success 200 {object} dto.APIResponse{data=models.GraduateProfile} "Graduate assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not an office account"
// @Failure 404 {object} dto.ErrorResponse "Graduate or staff request not found"
// @Failure 409 {object} dto.ErrorResponse "Request fulfilled or not open"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduates/{id}/assignment [post]
func (c *GraduateController) Assign(ctx *gin.Context) {
	id, ok := parseGraduateID(ctx)
	if !ok {
		return
	}

	var req dto.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.graduateService.Assign(ctx, id, req.StaffRequestID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// Progress returns the graduate's service-year progress
// @Summary Get service progress
// @Description Returns the derived service-year completion percentage
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Graduate ID"
// @Success 200 {object} dto.APIResponse{data=dto.ServiceProgressResponse} "Progress retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid graduate ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduates/{id}/progress [get]
func (c *GraduateController) Progress(ctx *gin.Context) {
	id, ok := parseGraduateID(ctx)
	if !ok {
		return
	}

	progress, err := c.graduateService.Progress(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      progress,
		Timestamp: time.Now(),
	})
}

// CompleteService records the end of a graduate's service year
// @Summary Complete service
// @Description Stamps the service completion date on a serving graduate
// @Tags graduates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Graduate ID"
// @Success 200 {object} dto.APIResponse{data=models.GraduateProfile} "Service completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid graduate ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not an office account"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Failure 409 {object} dto.ErrorResponse "Graduate is not serving"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduates/{id}/complete [post]
func (c *GraduateController) CompleteService(ctx *gin.Context) {
	id, ok := parseGraduateID(ctx)
	if !ok {
		return
	}

	profile, err := c.graduateService.CompleteService(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}
