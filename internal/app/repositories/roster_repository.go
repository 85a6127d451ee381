package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
)

// RosterRepository handles database operations for uploaded roster rows
type RosterRepository struct {
	db *pgxpool.Pool
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *pgxpool.Pool) *RosterRepository {
	return &RosterRepository{
		db: db,
	}
}

const rosterColumns = `
	id, zone_id, batch_id, first_name, surname, gender, phone_number,
	university, course_of_study, graduation_year, fellowship, zonal_pastor,
	chapter_pastor_name, chapter_pastor_phone, chapter_pastor_email,
	claimed, claimed_at, created_at`

const getRosterRowQuery = `SELECT` + rosterColumns + `
	FROM zone_roster WHERE id = $1`

func scanRosterRow(row pgx.Row) (*models.RosterRow, error) {
	var r models.RosterRow
	err := row.Scan(
		&r.ID,
		&r.ZoneID,
		&r.BatchID,
		&r.FirstName,
		&r.Surname,
		&r.Gender,
		&r.PhoneNumber,
		&r.University,
		&r.CourseOfStudy,
		&r.GraduationYear,
		&r.Fellowship,
		&r.ZonalPastor,
		&r.ChapterPastorName,
		&r.ChapterPastorPhone,
		&r.ChapterPastorEmail,
		&r.Claimed,
		&r.ClaimedAt,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create persists one accepted roster row
func (r *RosterRepository) Create(ctx context.Context, row *models.RosterRow) error {
	query := `
		INSERT INTO zone_roster (
			zone_id, batch_id, first_name, surname, gender, phone_number,
			university, course_of_study, graduation_year, fellowship, zonal_pastor,
			chapter_pastor_name, chapter_pastor_phone, chapter_pastor_email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		row.ZoneID, row.BatchID, row.FirstName, row.Surname, row.Gender, row.PhoneNumber,
		row.University, row.CourseOfStudy, row.GraduationYear, row.Fellowship, row.ZonalPastor,
		row.ChapterPastorName, row.ChapterPastorPhone, row.ChapterPastorEmail,
	).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating roster row: %w", err)
	}

	return nil
}

// GetByID retrieves a roster row by ID
func (r *RosterRepository) GetByID(ctx context.Context, id int64) (*models.RosterRow, error) {
	row, err := scanRosterRow(r.db.QueryRow(ctx, getRosterRowQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRosterRowNotFound
		}
		return nil, fmt.Errorf("error retrieving roster row: %w", err)
	}

	return row, nil
}

// Search finds roster rows by exact match on all four identity inputs.
// Claimed rows are returned too; callers read the claimed flag. An empty
// result is not an error.
func (r *RosterRepository) Search(ctx context.Context, zoneID int64, surname, gender, phoneNumber string) ([]*models.RosterRow, error) {
	query := `
		SELECT` + rosterColumns + `
		FROM zone_roster
		WHERE zone_id = $1 AND surname = $2 AND gender = $3 AND phone_number = $4
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, zoneID, surname, gender, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("error searching roster: %w", err)
	}
	defer rows.Close()

	var result []*models.RosterRow
	for rows.Next() {
		row, err := scanRosterRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CountByBatch returns how many persisted rows belong to an upload batch
func (r *RosterRepository) CountByBatch(ctx context.Context, batchID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM zone_roster WHERE batch_id = $1`, batchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting batch rows: %w", err)
	}
	return count, nil
}
