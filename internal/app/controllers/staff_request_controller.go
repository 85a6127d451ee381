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

// StaffRequestController handles staff request operations
type StaffRequestController struct {
	staffRequestService *services.StaffRequestService
}

// NewStaffRequestController creates a new StaffRequestController
func NewStaffRequestController(staffRequestService *services.StaffRequestService) *StaffRequestController {
	return &StaffRequestController{
		staffRequestService: staffRequestService,
	}
}

func parseStaffRequestID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff request ID")
		errorDetail = errorDetail.WithDetails("Staff request ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Create files a new staff request for the caller's department
// @Summary Create a staff request
// @Description Files a headcount request for the authenticated department. New requests start PENDING with a zero fulfillment count.
// @Tags staff-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequestRequest true "Request details"
// @Success 201 {object} dto.APIResponse{data=models.StaffRequest} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not a department account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff-requests [post]
func (c *StaffRequestController) Create(ctx *gin.Context) {
	departmentID, ok := ctx.Get(middleware.CtxDepartmentID)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("No department is tied to this account")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateStaffRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.staffRequestService.Create(ctx, departmentID.(int64), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// List retrieves staff requests
// @Summary List staff requests
// @Description Retrieves staff requests, optionally filtered by status and department
// @Tags staff-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param departmentId query int false "Filter by department"
// @Success 200 {object} dto.APIResponse{data=[]models.StaffRequest} "Requests retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff-requests [get]
func (c *StaffRequestController) List(ctx *gin.Context) {
	var filter dto.StaffRequestFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	requests, err := c.staffRequestService.List(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one staff request
// @Summary Get staff request by ID
// @Description Retrieves a specific staff request with its department
// @Tags staff-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff request ID"
// @Success 200 {object} dto.APIResponse{data=models.StaffRequest} "Request retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff request ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Staff request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff-requests/{id} [get]
func (c *StaffRequestController) GetByID(ctx *gin.Context) {
	id, ok := parseStaffRequestID(ctx)
	if !ok {
		return
	}

	request, err := c.staffRequestService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// Review applies the office decision on a pending request
// @Summary Review a staff request
// @Description Approves, rejects or cancels a pending staff request
// @Tags staff-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff request ID"
// @Param request body dto.ReviewStaffRequestRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.StaffRequest} "Decision applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not an office account"
// @Failure 404 {object} dto.ErrorResponse "Staff request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff-requests/{id}/review [post]
func (c *StaffRequestController) Review(ctx *gin.Context) {
	id, ok := parseStaffRequestID(ctx)
	if !ok {
		return
	}

	var req dto.ReviewStaffRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.staffRequestService.Review(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// Fulfill counts one assignment against the request
// @Summary Record a fulfillment
// @Description Adds one fulfilled assignment. The status flips to FULFILLED exactly when the count reaches the requested total; further attempts fail.
// @Tags staff-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff request ID"
// @Success 200 {object} dto.APIResponse{data=models.StaffRequest} "Fulfillment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff request ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not an office account"
// @Failure 404 {object} dto.ErrorResponse "Staff request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already fully fulfilled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff-requests/{id}/fulfillments [post]
func (c *StaffRequestController) Fulfill(ctx *gin.Context) {
	id, ok := parseStaffRequestID(ctx)
	if !ok {
		return
	}

	request, err := c.staffRequestService.Fulfill(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// Unfulfill releases one assignment from the request
// @Summary Release a fulfillment
// @Description Removes one fulfilled assignment, for example after a withdrawal. A FULFILLED request reverts to APPROVED; the count never goes below zero.
// @Tags staff-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff request ID"
// @Success 200 {object} dto.APIResponse{data=models.StaffRequest} "Fulfillment released"
// @Failure 400 {object} dto.ErrorResponse "Invalid staff request ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not an office account"
// @Failure 404 {object} dto.ErrorResponse "Staff request not found"
// @Failure 409 {object} dto.ErrorResponse "Nothing to release"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff-requests/{id}/fulfillments [delete]
func (c *StaffRequestController) Unfulfill(ctx *gin.Context) {
	id, ok := parseStaffRequestID(ctx)
	if !ok {
		return
	}

	request, err := c.staffRequestService.Unfulfill(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}
