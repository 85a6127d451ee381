package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
)

// staffRequestStore is the staff request persistence surface the service needs
type staffRequestStore interface {
	Create(ctx context.Context, request *models.StaffRequest) error
	GetByID(ctx context.Context, id int64) (*models.StaffRequest, error)
	List(ctx context.Context, status models.StaffRequestStatus, departmentID int64) ([]*models.StaffRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.StaffRequestStatus) error
	IncrementFulfillment(ctx context.Context, id int64) (*models.StaffRequest, error)
	DecrementFulfillment(ctx context.Context, id int64) (*models.StaffRequest, error)
}

// StaffRequestService handles department headcount requests and their
// fulfillment lifecycle
type StaffRequestService struct {
	requestRepo staffRequestStore
	deptRepo    departmentStore
	logger      zerolog.Logger
}

// NewStaffRequestService creates a new StaffRequestService
func NewStaffRequestService(requestRepo staffRequestStore, deptRepo departmentStore, logger zerolog.Logger) *StaffRequestService {
	return &StaffRequestService{
		requestRepo: requestRepo,
		deptRepo:    deptRepo,
		logger:      logger,
	}
}

// Create records a department's request for staff. New requests start
// PENDING with a zero fulfillment count.
func (s *StaffRequestService) Create(ctx context.Context, departmentID int64, req *dto.CreateStaffRequestRequest) (*models.StaffRequest, error) {
	verr := apperrors.NewValidationError()
	if strings.TrimSpace(req.Position) == "" {
		verr.Add("position", "Position is required")
	}
	if req.NumberOfStaff < 1 {
		verr.Add("numberOfStaff", "Number of staff must be at least 1")
	}
	urgency := models.UrgencyTier(req.Urgency)
	if !urgency.IsValid() {
		verr.Add("urgency", "Urgency must be one of LOW, NORMAL, HIGH, CRITICAL")
	}
	if req.GenderPreference != nil {
		if g := *req.GenderPreference; g != models.GenderMale && g != models.GenderFemale {
			verr.Add("genderPreference", "Gender preference must be MALE or FEMALE")
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	exists, err := s.deptRepo.ExistsByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrDepartmentNotFound
	}

	request := &models.StaffRequest{
		DepartmentID:     departmentID,
		Position:         strings.TrimSpace(req.Position),
		Description:      strings.TrimSpace(req.Description),
		NumberOfStaff:    req.NumberOfStaff,
		GenderPreference: req.GenderPreference,
		Urgency:          urgency,
		Status:           models.RequestPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("staffRequestId", request.ID).
		Int64("departmentId", departmentID).
		Str("position", request.Position).
		Int("numberOfStaff", request.NumberOfStaff).
		Msg("Staff request created")

	return request, nil
}

// GetByID retrieves a staff request, enriched with its department
func (s *StaffRequestService) GetByID(ctx context.Context, id int64) (*models.StaffRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department, err := s.deptRepo.GetByID(ctx, request.DepartmentID)
	if err == nil && department != nil {
		request.Department = department
	}

	return request, nil
}

// List retrieves staff requests matching the filter
func (s *StaffRequestService) List(ctx context.Context, filter *dto.StaffRequestFilter) ([]*models.StaffRequest, error) {
	status := models.StaffRequestStatus(filter.Status)
	if filter.Status != "" && !status.IsValid() {
		verr := apperrors.NewValidationError()
		verr.Add("status", fmt.Sprintf("Unknown status %q", filter.Status))
		return nil, verr
	}

	requests, err := s.requestRepo.List(ctx, status, filter.DepartmentID)
	if err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []*models.StaffRequest{}
	}
	return requests, nil
}

// Review applies the office decision to a pending request. Only PENDING
// requests can be approved or rejected; the department itself may cancel.
func (s *StaffRequestService) Review(ctx context.Context, id int64, req *dto.ReviewStaffRequestRequest) (*models.StaffRequest, error) {
	decision := models.StaffRequestStatus(req.Decision)
	switch decision {
	case models.RequestApproved, models.RequestRejected, models.RequestCancelled:
	default:
		verr := apperrors.NewValidationError()
		verr.Add("decision", "Decision must be APPROVED, REJECTED or CANCELLED")
		return nil, verr
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != models.RequestPending {
		return nil, apperrors.ErrRequestNotOpen
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, decision); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("staffRequestId", id).
		Str("decision", string(decision)).
		Msg("Staff request reviewed")

	return s.requestRepo.GetByID(ctx, id)
}

// Fulfill counts one more assignment against the request. The store
// performs the increment as a guarded update, so the count can never
// exceed the requested total even under concurrent assignments.
func (s *StaffRequestService) Fulfill(ctx context.Context, id int64) (*models.StaffRequest, error) {
	request, err := s.requestRepo.IncrementFulfillment(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status == models.RequestFulfilled {
		s.logger.Info().
			Int64("staffRequestId", id).
			Int("numberOfStaff", request.NumberOfStaff).
			Msg("Staff request fully fulfilled")
	}

	return request, nil
}

// Unfulfill releases one assignment from the request, for example when
// an assigned graduate withdraws. A FULFILLED request reverts to APPROVED.
func (s *StaffRequestService) Unfulfill(ctx context.Context, id int64) (*models.StaffRequest, error) {
	request, err := s.requestRepo.DecrementFulfillment(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("staffRequestId", id).
		Int("fulfilledCount", request.FulfilledCount).
		Msg("Staff request assignment released")

	return request, nil
}
