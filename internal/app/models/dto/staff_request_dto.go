package dto

// CreateStaffRequestRequest is a department's headcount request
type CreateStaffRequestRequest struct {
	Position         string  `json:"position" binding:"required"`
	Description      string  `json:"description"`
	NumberOfStaff    int     `json:"numberOfStaff" binding:"required,min=1"`
	GenderPreference *string `json:"genderPreference,omitempty"`
	Urgency          string  `json:"urgency" binding:"required"`
}

// ReviewStaffRequestRequest carries the office decision on a pending request
type ReviewStaffRequestRequest struct {
	Decision string `json:"decision" binding:"required"` // APPROVED, REJECTED or CANCELLED
}

// StaffRequestFilter narrows staff request listings
type StaffRequestFilter struct {
	Status       string `form:"status"`
	DepartmentID int64  `form:"departmentId"`
}
