package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/app/services"
	"github.com/temidayo/servecorps/internal/middleware"
)

// RosterController handles roster upload and claim search operations
type RosterController struct {
	rosterService   *services.RosterService
	graduateService *services.GraduateService
}

// NewRosterController creates a new RosterController
func NewRosterController(rosterService *services.RosterService, graduateService *services.GraduateService) *RosterController {
	return &RosterController{
		rosterService:   rosterService,
		graduateService: graduateService,
	}
}

// IngestBatch handles one parsed roster upload for the caller's zone
// @Summary Upload a roster batch
// @Description Validates and stores one parsed roster upload. Valid rows become claimable immediately; invalid rows are reported with their 1-based index and every violated rule.
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IngestBatchRequest true "Parsed roster rows"
// @Success 200 {object} dto.APIResponse{data=dto.BatchResult} "Batch processed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not a zone account"
// @Failure 404 {object} dto.ErrorResponse "Zone not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roster/batches [post]
func (c *RosterController) IngestBatch(ctx *gin.Context) {
	zoneID, ok := ctx.Get(middleware.CtxZoneID)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("No zone is tied to this account")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.IngestBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid batch data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.rosterService.IngestBatch(ctx, zoneID.(int64), req.Rows)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// Search finds roster rows matching a registrant's identity
// @Summary Search roster rows
// @Description Finds roster rows by exact match on zone, surname, gender and phone number. Claimed rows are included; no match yields an empty list.
// @Tags roster
// @Accept json
// @Produce json
// @Param zoneId query int true "Zone ID"
// @Param surname query string true "Surname (exact, case-sensitive)"
// @Param gender query string true "Gender (MALE or FEMALE)"
// @Param phoneNumber query string true "Phone number (exact)"
// @Success 200 {object} dto.APIResponse{data=[]models.RosterRow} "Matching rows"
// @Failure 400 {object} dto.ErrorResponse "Missing search inputs"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roster/search [get]
func (c *RosterController) Search(ctx *gin.Context) {
	var query dto.RosterSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid search parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rows, err := c.rosterService.Search(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rows,
		Timestamp: time.Now(),
	})
}

// Claim binds a roster row to a new graduate profile
// @Summary Claim a roster row
// @Description Claims the roster row and creates the graduate profile in one atomic step. A row can be claimed exactly once.
// @Tags roster
// @Accept json
// @Produce json
// @Param id path int true "Roster row ID"
// @Param request body dto.RegistrationForm true "Registration form"
// @Success 201 {object} dto.APIResponse{data=models.GraduateProfile} "Profile created"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration data"
// @Failure 404 {object} dto.ErrorResponse "Roster row not found"
// @Failure 409 {object} dto.ErrorResponse "Row already claimed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roster/rows/{id}/claim [post]
func (c *RosterController) Claim(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid roster row ID")
		errorDetail = errorDetail.WithDetails("Roster row ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var form dto.RegistrationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.graduateService.Bind(ctx, id, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}
