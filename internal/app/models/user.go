package models

import "time"

// RoleType defines portal account roles
type RoleType string

const (
	RoleZone       RoleType = "ZONE"       // Regional office: uploads rosters
	RoleOffice     RoleType = "OFFICE"     // Central office: reviews and assigns
	RoleDepartment RoleType = "DEPARTMENT" // Service department: files staff requests
)

// User defines a portal account based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`                                // Unique identifier for the user
	Email        string     `json:"email" db:"email" example:"office@servecorps.org"`      // Login email
	PasswordHash string     `json:"-" db:"password_hash"`                                  // Hashed password (excluded from JSON)
	Role         RoleType   `json:"role" db:"role" example:"OFFICE"`                       // Account role
	ZoneID       *int64     `json:"zoneId,omitempty" db:"zone_id" example:"3"`             // Set for ZONE accounts
	DepartmentID *int64     `json:"departmentId,omitempty" db:"department_id" example:"4"` // Set for DEPARTMENT accounts
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`                // Whether the account is active
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}
