package dto

// RegistrationForm is the full payload a graduate submits when claiming a
// roster row. Every section is validated together and all violations are
// reported at once.
type RegistrationForm struct {
	// Personal section
	Email         string `json:"email"`
	DateOfBirth   string `json:"dateOfBirth"` // YYYY-MM-DD
	MaritalStatus string `json:"maritalStatus"`
	Address       string `json:"address"`

	// Family section
	NextOfKinName         string `json:"nextOfKinName"`
	NextOfKinPhone        string `json:"nextOfKinPhone"`
	NextOfKinRelationship string `json:"nextOfKinRelationship"`

	// Education section
	HighestQualification string `json:"highestQualification"`

	// Spiritual journey section
	BornAgainStory   string `json:"bornAgainStory"`
	WaterBaptism     bool   `json:"waterBaptism"`
	HolyGhostBaptism bool   `json:"holyGhostBaptism"`

	// Test section
	TestAnswers string `json:"testAnswers"`

	// Account section
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// StatusTransitionRequest asks the office to move a graduate to a new
// pipeline state. ServiceDepartmentID may accompany the request so that
// assignment and the move to SERVING can be issued together.
type StatusTransitionRequest struct {
	Status              string `json:"status" binding:"required"`
	ServiceDepartmentID *int64 `json:"serviceDepartmentId,omitempty"`
}

// AssignmentRequest ties a graduate to a specific staff request
type AssignmentRequest struct {
	StaffRequestID int64 `json:"staffRequestId" binding:"required,min=1"`
}

// ServiceProgressResponse is the derived dashboard progress for a graduate
type ServiceProgressResponse struct {
	GraduateID      int64   `json:"graduateId" example:"7"`
	Status          string  `json:"status" example:"SERVING"`
	ProgressPercent float64 `json:"progressPercent" example:"42.5"`
}
