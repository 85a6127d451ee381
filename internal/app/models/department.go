package models

// ServiceDepartment defines the department model based on the 'service_departments' table
type ServiceDepartment struct {
	ID          int64  `json:"id" db:"id" example:"1"`                                  // Unique identifier for the department
	Name        string `json:"name" db:"name" example:"Media"`                          // Department name
	Description string `json:"description" db:"description" example:"Audio and video"` // What the department does
}
