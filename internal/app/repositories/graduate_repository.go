package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
	"github.com/temidayo/servecorps/internal/pkg/dberrors"
)

// GraduateRepository handles database operations for graduate profiles
type GraduateRepository struct {
	db *pgxpool.Pool
}

// NewGraduateRepository creates a new graduate repository
func NewGraduateRepository(db *pgxpool.Pool) *GraduateRepository {
	return &GraduateRepository{
		db: db,
	}
}

const graduateColumns = `
	id, roster_row_id, first_name, surname, gender, phone_number,
	university, course_of_study, graduation_year, email, date_of_birth,
	marital_status, address, next_of_kin_name, next_of_kin_phone,
	next_of_kin_relationship, highest_qualification, born_again_story,
	water_baptism, holy_ghost_baptism, test_answers, password_hash,
	status, service_department_id, service_started_date,
	service_completed_date, created_at, updated_at`

const (
	getGraduateQuery = `SELECT` + graduateColumns + `
	FROM graduate_profiles WHERE id = $1`

	listGraduatesQuery = `SELECT` + graduateColumns + `
	FROM graduate_profiles ORDER BY created_at DESC OFFSET $1 LIMIT $2`
)

func scanGraduate(row pgx.Row) (*models.GraduateProfile, error) {
	var p models.GraduateProfile
	err := row.Scan(
		&p.ID,
		&p.RosterRowID,
		&p.FirstName,
		&p.Surname,
		&p.Gender,
		&p.PhoneNumber,
		&p.University,
		&p.CourseOfStudy,
		&p.GraduationYear,
		&p.Email,
		&p.DateOfBirth,
		&p.MaritalStatus,
		&p.Address,
		&p.NextOfKinName,
		&p.NextOfKinPhone,
		&p.NextOfKinRelationship,
		&p.HighestQualification,
		&p.BornAgainStory,
		&p.WaterBaptism,
		&p.HolyGhostBaptism,
		&p.TestAnswers,
		&p.PasswordHash,
		&p.Status,
		&p.ServiceDepartmentID,
		&p.ServiceStartedDate,
		&p.ServiceCompletedDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Bind claims a roster row and creates the graduate profile as one unit.
// The claim is a single conditional UPDATE checked through RowsAffected,
// so of two concurrent bind attempts exactly one can succeed; the unique
// constraint on roster_row_id backs the same invariant at storage level.
func (r *GraduateRepository) Bind(ctx context.Context, profile *models.GraduateProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin bind transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE zone_roster
		SET claimed = TRUE, claimed_at = NOW()
		WHERE id = $1 AND claimed = FALSE`,
		profile.RosterRowID)
	if err != nil {
		return fmt.Errorf("error claiming roster row: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Distinguish a lost race from a bad identifier
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM zone_roster WHERE id = $1)`,
			profile.RosterRowID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking roster row existence: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyClaimed
		}
		return apperrors.ErrRosterRowNotFound
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO graduate_profiles (
			roster_row_id, first_name, surname, gender, phone_number,
			university, course_of_study, graduation_year, email, date_of_birth,
			marital_status, address, next_of_kin_name, next_of_kin_phone,
			next_of_kin_relationship, highest_qualification, born_again_story,
			water_baptism, holy_ghost_baptism, test_answers, password_hash, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`,
		profile.RosterRowID, profile.FirstName, profile.Surname, profile.Gender, profile.PhoneNumber,
		profile.University, profile.CourseOfStudy, profile.GraduationYear, profile.Email, profile.DateOfBirth,
		profile.MaritalStatus, profile.Address, profile.NextOfKinName, profile.NextOfKinPhone,
		profile.NextOfKinRelationship, profile.HighestQualification, profile.BornAgainStory,
		profile.WaterBaptism, profile.HolyGhostBaptism, profile.TestAnswers, profile.PasswordHash,
		profile.Status,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "graduate_profiles_roster_row_id_key") {
			return apperrors.ErrAlreadyClaimed
		}
		return fmt.Errorf("error creating graduate profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bind transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a graduate profile by ID
func (r *GraduateRepository) GetByID(ctx context.Context, id int64) (*models.GraduateProfile, error) {
	profile, err := scanGraduate(r.db.QueryRow(ctx, getGraduateQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGraduateNotFound
		}
		return nil, fmt.Errorf("error retrieving graduate profile: %w", err)
	}

	return profile, nil
}

// List retrieves a page of graduate profiles, newest first
func (r *GraduateRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.GraduateProfile, error) {
	rows, err := r.db.Query(ctx, listGraduatesQuery, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing graduate profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.GraduateProfile
	for rows.Next() {
		p, err := scanGraduate(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Count returns the total number of graduate profiles
func (r *GraduateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM graduate_profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting graduate profiles: %w", err)
	}
	return count, nil
}

// UpdateStatus persists a status change. When startedDate is non-nil the
// service start date is set only if not already present.
func (r *GraduateRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, startedDate *time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE graduate_profiles
		SET status = $1,
		    service_started_date = COALESCE(service_started_date, $2),
		    updated_at = NOW()
		WHERE id = $3`,
		status, startedDate, id)
	if err != nil {
		return fmt.Errorf("error updating graduate status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGraduateNotFound
	}

	return nil
}

// AssignDepartment sets the graduate's service department
func (r *GraduateRepository) AssignDepartment(ctx context.Context, id, departmentID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE graduate_profiles
		SET service_department_id = $1, updated_at = NOW()
		WHERE id = $2`,
		departmentID, id)
	if err != nil {
		return fmt.Errorf("error assigning department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGraduateNotFound
	}

	return nil
}

// CompleteService records the service completion date once
func (r *GraduateRepository) CompleteService(ctx context.Context, id int64, completedDate time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE graduate_profiles
		SET service_completed_date = $1, updated_at = NOW()
		WHERE id = $2 AND service_completed_date IS NULL`,
		completedDate, id)
	if err != nil {
		return fmt.Errorf("error completing service: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGraduateNotFound
	}

	return nil
}
