package models

import "time"

// StaffRequestStatus is the closed set of staff request states
type StaffRequestStatus string

const (
	RequestPending   StaffRequestStatus = "PENDING"
	RequestApproved  StaffRequestStatus = "APPROVED"
	RequestRejected  StaffRequestStatus = "REJECTED"
	RequestFulfilled StaffRequestStatus = "FULFILLED"
	RequestCancelled StaffRequestStatus = "CANCELLED"
)

// IsValid reports whether s is a known staff request status
func (s StaffRequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestFulfilled, RequestCancelled:
		return true
	}
	return false
}

// UrgencyTier is the closed set of staff request urgency levels
type UrgencyTier string

const (
	UrgencyLow      UrgencyTier = "LOW"
	UrgencyNormal   UrgencyTier = "NORMAL"
	UrgencyHigh     UrgencyTier = "HIGH"
	UrgencyCritical UrgencyTier = "CRITICAL"
)

// IsValid reports whether u is a known urgency tier
func (u UrgencyTier) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// StaffRequest defines a department headcount request based on the
// 'staff_requests' table. Invariant: 0 <= FulfilledCount <= NumberOfStaff,
// and Status is FULFILLED exactly when FulfilledCount == NumberOfStaff.
type StaffRequest struct {
	ID               int64              `json:"id" db:"id" example:"1"`                                     // Unique identifier for the request
	DepartmentID     int64              `json:"departmentId" db:"department_id" example:"4"`                // Requesting department
	Position         string             `json:"position" db:"position" example:"Video Editor"`              // Requested position
	Description      string             `json:"description" db:"description" example:"Edits weekly clips"` // What the role involves
	NumberOfStaff    int                `json:"numberOfStaff" db:"number_of_staff" example:"2"`             // Requested headcount
	GenderPreference *string            `json:"genderPreference,omitempty" db:"gender_preference"`          // Optional MALE/FEMALE preference
	Urgency          UrgencyTier        `json:"urgency" db:"urgency" example:"HIGH"`                        // Urgency tier
	Status           StaffRequestStatus `json:"status" db:"status" example:"APPROVED"`                      // Request status
	FulfilledCount   int                `json:"fulfilledCount" db:"fulfilled_count" example:"1"`            // Assignments made so far
	CreatedAt        time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" db:"updated_at"`

	Department *ServiceDepartment `json:"department,omitempty"` // Relation, no db tag
}
