package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ZoneRepository         *ZoneRepository
	DepartmentRepository   *DepartmentRepository
	RosterRepository       *RosterRepository
	GraduateRepository     *GraduateRepository
	StaffRequestRepository *StaffRequestRepository
	UserRepository         *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ZoneRepository:         NewZoneRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		RosterRepository:       NewRosterRepository(db),
		GraduateRepository:     NewGraduateRepository(db),
		StaffRequestRepository: NewStaffRequestRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}
