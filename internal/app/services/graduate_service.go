package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
	"github.com/temidayo/servecorps/internal/pkg/auth"
	"github.com/temidayo/servecorps/internal/pkg/validation"
)

// graduateStore is the graduate persistence surface the service needs
type graduateStore interface {
	Bind(ctx context.Context, profile *models.GraduateProfile) error
	GetByID(ctx context.Context, id int64) (*models.GraduateProfile, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.GraduateProfile, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, startedDate *time.Time) error
	AssignDepartment(ctx context.Context, id, departmentID int64) error
	CompleteService(ctx context.Context, id int64, completedDate time.Time) error
}

// departmentStore is the department lookup surface the service needs
type departmentStore interface {
	GetByID(ctx context.Context, id int64) (*models.ServiceDepartment, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// assignmentStore is the staff request surface used for assignments
type assignmentStore interface {
	GetByID(ctx context.Context, id int64) (*models.StaffRequest, error)
	IncrementFulfillment(ctx context.Context, id int64) (*models.StaffRequest, error)
	DecrementFulfillment(ctx context.Context, id int64) (*models.StaffRequest, error)
	RecordAssignment(ctx context.Context, graduateID, requestID int64) error
}

// GraduateService handles roster claiming, the review pipeline and
// department assignments
type GraduateService struct {
	graduateRepo graduateStore
	rosterRepo   rosterStore
	deptRepo     departmentStore
	requestRepo  assignmentStore
	logger       zerolog.Logger
}

// NewGraduateService creates a new GraduateService
func NewGraduateService(
	graduateRepo graduateStore,
	rosterRepo rosterStore,
	deptRepo departmentStore,
	requestRepo assignmentStore,
	logger zerolog.Logger,
) *GraduateService {
	return &GraduateService{
		graduateRepo: graduateRepo,
		rosterRepo:   rosterRepo,
		deptRepo:     deptRepo,
		requestRepo:  requestRepo,
		logger:       logger,
	}
}

// validateRegistrationForm checks every section of the registration form
// and reports all violations together.
func validateRegistrationForm(form *dto.RegistrationForm) *apperrors.ValidationError {
	verr := apperrors.NewValidationError()

	// Personal section
	if strings.TrimSpace(form.Email) == "" {
		verr.Add("email", "Email is required")
	} else if !validation.IsEmail(form.Email) {
		verr.Add("email", "Email must be a valid email address")
	}
	if strings.TrimSpace(form.MaritalStatus) == "" {
		verr.Add("maritalStatus", "Marital status is required")
	}
	if strings.TrimSpace(form.Address) == "" {
		verr.Add("address", "Address is required")
	}
	if form.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", form.DateOfBirth); err != nil {
			verr.Add("dateOfBirth", "Date of birth must be in YYYY-MM-DD format")
		}
	}

	// Family section
	if strings.TrimSpace(form.NextOfKinName) == "" {
		verr.Add("nextOfKinName", "Next of kin name is required")
	}
	if strings.TrimSpace(form.NextOfKinPhone) == "" {
		verr.Add("nextOfKinPhone", "Next of kin phone is required")
	} else if !validation.IsPhone(form.NextOfKinPhone) {
		verr.Add("nextOfKinPhone", "Next of kin phone must start with + followed by digits, spaces, hyphens or parentheses")
	}
	if strings.TrimSpace(form.NextOfKinRelationship) == "" {
		verr.Add("nextOfKinRelationship", "Next of kin relationship is required")
	}

	// Education section
	if strings.TrimSpace(form.HighestQualification) == "" {
		verr.Add("highestQualification", "Highest qualification is required")
	}

	// Spiritual journey section
	if strings.TrimSpace(form.BornAgainStory) == "" {
		verr.Add("bornAgainStory", "Born again story is required")
	}

	// Test section
	if strings.TrimSpace(form.TestAnswers) == "" {
		verr.Add("testAnswers", "Test answers are required")
	}

	// Account section
	if len(form.Password) < validation.PasswordMinLength {
		verr.Add("password", fmt.Sprintf("Password must be at least %d characters long", validation.PasswordMinLength))
	}
	if form.Password != form.ConfirmPassword {
		verr.Add("confirmPassword", "Password and confirmation do not match")
	}

	return verr
}

// Bind claims a roster row for a registrant and creates their graduate
// profile with status UNDER_REVIEW. The claim and the profile creation
// happen as one atomic unit in the store, so of two concurrent binds on
// the same row exactly one succeeds and the other gets ErrAlreadyClaimed.
func (s *GraduateService) Bind(ctx context.Context, rosterRowID int64, form *dto.RegistrationForm) (*models.GraduateProfile, error) {
	if verr := validateRegistrationForm(form); verr.HasErrors() {
		return nil, verr
	}

	row, err := s.rosterRepo.GetByID(ctx, rosterRowID)
	if err != nil {
		return nil, err
	}
	if row.Claimed {
		return nil, apperrors.ErrAlreadyClaimed
	}

	passwordHash, err := auth.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var dateOfBirth *time.Time
	if form.DateOfBirth != "" {
		parsed, _ := time.Parse("2006-01-02", form.DateOfBirth)
		dateOfBirth = &parsed
	}

	// Identity fields are copied from the roster row so the profile stays
	// self-contained even if the roster row is later altered.
	profile := &models.GraduateProfile{
		RosterRowID:           row.ID,
		FirstName:             row.FirstName,
		Surname:               row.Surname,
		Gender:                row.Gender,
		PhoneNumber:           row.PhoneNumber,
		University:            row.University,
		CourseOfStudy:         row.CourseOfStudy,
		GraduationYear:        row.GraduationYear,
		Email:                 strings.TrimSpace(form.Email),
		DateOfBirth:           dateOfBirth,
		MaritalStatus:         strings.TrimSpace(form.MaritalStatus),
		Address:               strings.TrimSpace(form.Address),
		NextOfKinName:         strings.TrimSpace(form.NextOfKinName),
		NextOfKinPhone:        strings.TrimSpace(form.NextOfKinPhone),
		NextOfKinRelationship: strings.TrimSpace(form.NextOfKinRelationship),
		HighestQualification:  strings.TrimSpace(form.HighestQualification),
		BornAgainStory:        form.BornAgainStory,
		WaterBaptism:          form.WaterBaptism,
		HolyGhostBaptism:      form.HolyGhostBaptism,
		TestAnswers:           form.TestAnswers,
		PasswordHash:          passwordHash,
		Status:                models.StatusUnderReview,
	}

	if err := s.graduateRepo.Bind(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("rosterRowId", row.ID).
		Int64("graduateId", profile.ID).
		Msg("Roster row claimed")

	return profile, nil
}

// GetByID retrieves a graduate profile, enriched with its department
func (s *GraduateService) GetByID(ctx context.Context, id int64) (*models.GraduateProfile, error) {
	if id <= 0 {
		return nil, apperrors.ErrGraduateNotFound
	}

	profile, err := s.graduateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if profile.ServiceDepartmentID != nil {
		department, err := s.deptRepo.GetByID(ctx, *profile.ServiceDepartmentID)
		if err == nil && department != nil {
			profile.ServiceDepartment = department
		}
	}

	return profile, nil
}

// List retrieves a page of graduate profiles with the total count
func (s *GraduateService) List(ctx context.Context, offset uint64, limit int) ([]*models.GraduateProfile, int64, error) {
	profiles, err := s.graduateRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.graduateRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Transition moves a graduate to a new pipeline state. The transition
// table is authoritative: an invalid move fails with a TransitionError
// naming both states and never silently no-ops. A department assignment
// supplied with the request counts towards the SERVING precondition so
// assignment and the move can be issued together, but nothing is written
// until the whole transition has been validated.
func (s *GraduateService) Transition(ctx context.Context, id int64, req *dto.StatusTransitionRequest) (*models.GraduateProfile, error) {
	target := models.ApplicationStatus(req.Status)
	if !target.IsValid() {
		verr := apperrors.NewValidationError()
		verr.Add("status", fmt.Sprintf("Unknown status %q", req.Status))
		return nil, verr
	}

	profile, err := s.graduateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ServiceDepartmentID != nil {
		exists, err := s.deptRepo.ExistsByID(ctx, *req.ServiceDepartmentID)
		if err != nil {
			return nil, fmt.Errorf("error checking department: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrDepartmentNotFound
		}
	}

	if !profile.Status.CanTransitionTo(target) {
		return nil, apperrors.NewTransitionError(string(profile.Status), string(target))
	}

	departmentID := profile.ServiceDepartmentID
	if req.ServiceDepartmentID != nil {
		departmentID = req.ServiceDepartmentID
	}

	var startedDate *time.Time
	if target == models.StatusServing {
		if departmentID == nil {
			return nil, apperrors.ErrDepartmentNotAssigned
		}
		if profile.ServiceStartedDate == nil {
			now := time.Now()
			startedDate = &now
		}
	}

	if req.ServiceDepartmentID != nil {
		if err := s.graduateRepo.AssignDepartment(ctx, id, *req.ServiceDepartmentID); err != nil {
			return nil, err
		}
	}

	if err := s.graduateRepo.UpdateStatus(ctx, id, target, startedDate); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("graduateId", id).
		Str("from", string(profile.Status)).
		Str("to", string(target)).
		Msg("Application status changed")

	return s.GetByID(ctx, id)
}

// Assign ties a graduate to a specific staff request: the request's
// fulfillment counter is incremented (the guarded step), the graduate
// inherits the request's department, and the assignment is recorded for
// the audit trail.
func (s *GraduateService) Assign(ctx context.Context, graduateID int64, staffRequestID int64) (*models.GraduateProfile, error) {
	profile, err := s.graduateRepo.GetByID(ctx, graduateID)
	if err != nil {
		return nil, err
	}
	if profile.Status == models.StatusNotAccepted {
		return nil, apperrors.NewTransitionError(string(profile.Status), string(models.StatusServing))
	}

	request, err := s.requestRepo.GetByID(ctx, staffRequestID)
	if err != nil {
		return nil, err
	}
	switch request.Status {
	case models.RequestPending, models.RequestApproved:
		// open for assignment
	case models.RequestFulfilled:
		return nil, apperrors.ErrOverfulfilled
	default:
		return nil, apperrors.ErrRequestNotOpen
	}

	if _, err := s.requestRepo.IncrementFulfillment(ctx, staffRequestID); err != nil {
		return nil, err
	}

	// The counter only counts recorded assignments, so a failure in either
	// follow-up write reverts the increment.
	if err := s.graduateRepo.AssignDepartment(ctx, graduateID, request.DepartmentID); err != nil {
		s.revertFulfillment(ctx, staffRequestID)
		return nil, err
	}

	if err := s.requestRepo.RecordAssignment(ctx, graduateID, staffRequestID); err != nil {
		s.revertFulfillment(ctx, staffRequestID)
		return nil, err
	}

	s.logger.Info().
		Int64("graduateId", graduateID).
		Int64("staffRequestId", staffRequestID).
		Int64("departmentId", request.DepartmentID).
		Msg("Graduate assigned to staff request")

	return s.GetByID(ctx, graduateID)
}

func (s *GraduateService) revertFulfillment(ctx context.Context, staffRequestID int64) {
	if _, err := s.requestRepo.DecrementFulfillment(ctx, staffRequestID); err != nil {
		s.logger.Error().
			Err(err).
			Int64("staffRequestId", staffRequestID).
			Msg("Failed to revert fulfillment after assignment error")
	}
}

// Progress returns the derived service-year progress for dashboards
func (s *GraduateService) Progress(ctx context.Context, id int64) (*dto.ServiceProgressResponse, error) {
	profile, err := s.graduateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.ServiceProgressResponse{
		GraduateID:      profile.ID,
		Status:          string(profile.Status),
		ProgressPercent: profile.ServiceProgress(time.Now()),
	}, nil
}

// CompleteService stamps the service completion date on a serving graduate
func (s *GraduateService) CompleteService(ctx context.Context, id int64) (*models.GraduateProfile, error) {
	profile, err := s.graduateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Status != models.StatusServing {
		return nil, apperrors.ErrServiceNotStarted
	}

	if err := s.graduateRepo.CompleteService(ctx, id, time.Now()); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}
