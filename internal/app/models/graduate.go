package models

import "time"

// ApplicationStatus is the closed set of review pipeline states
type ApplicationStatus string

// Review pipeline states. NOT_ACCEPTED is reachable from every
// non-terminal state; SERVING and NOT_ACCEPTED accept no further
// transitions.
const (
	StatusUnderReview         ApplicationStatus = "UNDER_REVIEW"
	StatusInvitedForInterview ApplicationStatus = "INVITED_FOR_INTERVIEW"
	StatusInterviewed         ApplicationStatus = "INTERVIEWED"
	StatusSighting            ApplicationStatus = "SIGHTING"
	StatusServing             ApplicationStatus = "SERVING"
	StatusNotAccepted         ApplicationStatus = "NOT_ACCEPTED"
)

// statusTransitions is the explicit transition table for the review
// pipeline. Absence of an entry for a target means the transition is
// invalid from that state.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusUnderReview:         {StatusInvitedForInterview, StatusNotAccepted},
	StatusInvitedForInterview: {StatusInterviewed, StatusNotAccepted},
	StatusInterviewed:         {StatusSighting, StatusNotAccepted},
	StatusSighting:            {StatusServing, StatusNotAccepted},
	StatusServing:             {},
	StatusNotAccepted:         {},
}

// IsValid reports whether s is a known pipeline state
func (s ApplicationStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is modeled from s
func (s ApplicationStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// CanTransitionTo reports whether the table allows moving from s to target
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// GraduateProfile defines the full registration record based on the
// 'graduate_profiles' table. Exactly one profile may reference a roster
// row (unique foreign key). Identity fields are copied from the roster
// row at bind time so the profile stays self-contained.
type GraduateProfile struct {
	ID          int64 `json:"id" db:"id" example:"1"`                      // Unique identifier for the profile
	RosterRowID int64 `json:"rosterRowId" db:"roster_row_id" example:"12"` // Claimed roster row (unique)

	// Identity fields copied from the roster row
	FirstName      string `json:"firstName" db:"first_name" example:"John"`
	Surname        string `json:"surname" db:"surname" example:"Doe"`
	Gender         string `json:"gender" db:"gender" example:"MALE"`
	PhoneNumber    string `json:"phoneNumber" db:"phone_number" example:"+2348012345678"`
	University     string `json:"university" db:"university" example:"University of Lagos"`
	CourseOfStudy  string `json:"courseOfStudy" db:"course_of_study" example:"Computer Science"`
	GraduationYear int    `json:"graduationYear" db:"graduation_year" example:"2025"`

	// Personal section supplied by the graduate at registration
	Email         string     `json:"email" db:"email" example:"john.doe@example.com"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	MaritalStatus string     `json:"maritalStatus" db:"marital_status" example:"SINGLE"`
	Address       string     `json:"address" db:"address" example:"12 Allen Avenue, Ikeja"`

	// Family section
	NextOfKinName         string `json:"nextOfKinName" db:"next_of_kin_name" example:"Jane Doe"`
	NextOfKinPhone        string `json:"nextOfKinPhone" db:"next_of_kin_phone" example:"+2348011112222"`
	NextOfKinRelationship string `json:"nextOfKinRelationship" db:"next_of_kin_relationship" example:"Sister"`

	// Education section
	HighestQualification string `json:"highestQualification" db:"highest_qualification" example:"BSc"`

	// Spiritual journey section
	BornAgainStory    string `json:"bornAgainStory" db:"born_again_story"`
	WaterBaptism      bool   `json:"waterBaptism" db:"water_baptism" example:"true"`
	HolyGhostBaptism  bool   `json:"holyGhostBaptism" db:"holy_ghost_baptism" example:"true"`
	TestAnswers       string `json:"testAnswers" db:"test_answers"`

	PasswordHash string `json:"-" db:"password_hash"` // Excluded from JSON

	Status               ApplicationStatus `json:"status" db:"status" example:"UNDER_REVIEW"`
	ServiceDepartmentID  *int64            `json:"serviceDepartmentId,omitempty" db:"service_department_id" example:"4"`
	ServiceStartedDate   *time.Time        `json:"serviceStartedDate,omitempty" db:"service_started_date"`
	ServiceCompletedDate *time.Time        `json:"serviceCompletedDate,omitempty" db:"service_completed_date"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	ServiceDepartment *ServiceDepartment `json:"serviceDepartment,omitempty"` // Relation, no db tag
}

// ServiceProgress returns the derived service-year completion percentage
// at the given time: daysSinceStart/365*100 clamped to [0, 100], and 0
// when service has not started. The value is never stored.
func (p *GraduateProfile) ServiceProgress(now time.Time) float64 {
	if p.ServiceStartedDate == nil {
		return 0
	}
	days := now.Sub(*p.ServiceStartedDate).Hours() / 24
	if days < 0 {
		return 0
	}
	progress := days / 365 * 100
	if progress > 100 {
		return 100
	}
	return progress
}
