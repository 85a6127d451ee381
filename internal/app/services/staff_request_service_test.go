package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
)

func newStaffRequestFixture() (*StaffRequestService, *fakeStaffRequestStore) {
	store := newFakeStaffRequestStore()
	svc := NewStaffRequestService(store, newFakeDepartmentStore(4), zerolog.Nop())
	return svc, store
}

func validCreateRequest() *dto.CreateStaffRequestRequest {
	return &dto.CreateStaffRequestRequest{
		Position:      "Video Editor",
		Description:   "Edits weekly clips",
		NumberOfStaff: 2,
		Urgency:       "HIGH",
	}
}

func TestCreateStaffRequestStartsPending(t *testing.T) {
	svc, _ := newStaffRequestFixture()

	request, err := svc.Create(context.Background(), 4, validCreateRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if request.Status != models.RequestPending {
		t.Fatalf("new request status = %s, want PENDING", request.Status)
	}
	if request.FulfilledCount != 0 {
		t.Fatalf("new request fulfilled count = %d, want 0", request.FulfilledCount)
	}
}

func TestCreateStaffRequestValidation(t *testing.T) {
	svc, _ := newStaffRequestFixture()

	bad := &dto.CreateStaffRequestRequest{
		Position:      "",
		NumberOfStaff: 0,
		Urgency:       "ASAP",
	}
	_, err := svc.Create(context.Background(), 4, bad)

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 violations, got %+v", verr.Fields)
	}
}

func TestCreateStaffRequestUnknownDepartment(t *testing.T) {
	svc, _ := newStaffRequestFixture()

	_, err := svc.Create(context.Background(), 99, validCreateRequest())
	if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestReviewOnlyPending(t *testing.T) {
	svc, _ := newStaffRequestFixture()
	ctx := context.Background()

	request, err := svc.Create(ctx, 4, validCreateRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	approved, err := svc.Review(ctx, request.ID, &dto.ReviewStaffRequestRequest{Decision: "APPROVED"})
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if approved.Status != models.RequestApproved {
		t.Fatalf("status = %s, want APPROVED", approved.Status)
	}

	// A second decision on the same request is rejected
	_, err = svc.Review(ctx, request.ID, &dto.ReviewStaffRequestRequest{Decision: "REJECTED"})
	if !errors.Is(err, apperrors.ErrRequestNotOpen) {
		t.Fatalf("expected ErrRequestNotOpen, got %v", err)
	}
}

func TestReviewBadDecision(t *testing.T) {
	svc, _ := newStaffRequestFixture()
	ctx := context.Background()

	request, err := svc.Create(ctx, 4, validCreateRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Review(ctx, request.ID, &dto.ReviewStaffRequestRequest{Decision: "PENDING"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFulfillFlipsStatusAtTotal(t *testing.T) {
	svc, _ := newStaffRequestFixture()
	ctx := context.Background()

	request, err := svc.Create(ctx, 4, validCreateRequest()) // needs 2
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Review(ctx, request.ID, &dto.ReviewStaffRequestRequest{Decision: "APPROVED"}); err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	first, err := svc.Fulfill(ctx, request.ID)
	if err != nil {
		t.Fatalf("first Fulfill failed: %v", err)
	}
	if first.Status != models.RequestApproved || first.FulfilledCount != 1 {
		t.Fatalf("after 1 of 2: %+v", first)
	}

	second, err := svc.Fulfill(ctx, request.ID)
	if err != nil {
		t.Fatalf("second Fulfill failed: %v", err)
	}
	if second.Status != models.RequestFulfilled || second.FulfilledCount != 2 {
		t.Fatalf("status must flip to FULFILLED exactly at the total: %+v", second)
	}

	_, err = svc.Fulfill(ctx, request.ID)
	if !errors.Is(err, apperrors.ErrOverfulfilled) {
		t.Fatalf("expected ErrOverfulfilled past the total, got %v", err)
	}

	// The failed attempt must not have moved the counter
	stored, _ := svc.GetByID(ctx, request.ID)
	if stored.FulfilledCount != 2 {
		t.Fatalf("count after rejected increment = %d, want 2", stored.FulfilledCount)
	}
}

func TestUnfulfillRevertsFulfilled(t *testing.T) {
	svc, _ := newStaffRequestFixture()
	ctx := context.Background()

	req := validCreateRequest()
	req.NumberOfStaff = 1
	request, err := svc.Create(ctx, 4, req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Review(ctx, request.ID, &dto.ReviewStaffRequestRequest{Decision: "APPROVED"}); err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if _, err := svc.Fulfill(ctx, request.ID); err != nil {
		t.Fatalf("Fulfill failed: %v", err)
	}

	reverted, err := svc.Unfulfill(ctx, request.ID)
	if err != nil {
		t.Fatalf("Unfulfill failed: %v", err)
	}
	if reverted.Status != models.RequestApproved || reverted.FulfilledCount != 0 {
		t.Fatalf("FULFILLED must revert to APPROVED with count 0, got %+v", reverted)
	}

	_, err = svc.Unfulfill(ctx, request.ID)
	if !errors.Is(err, apperrors.ErrNothingFulfilled) {
		t.Fatalf("count must not go below zero, got %v", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := newStaffRequestFixture()
	ctx := context.Background()

	first, err := svc.Create(ctx, 4, validCreateRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, 4, validCreateRequest()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Review(ctx, first.ID, &dto.ReviewStaffRequestRequest{Decision: "APPROVED"}); err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	pending, err := svc.List(ctx, &dto.StaffRequestFilter{Status: "PENDING"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(pending))
	}

	_, err = svc.List(ctx, &dto.StaffRequestFilter{Status: "OPEN"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for unknown status filter, got %v", err)
	}
}
