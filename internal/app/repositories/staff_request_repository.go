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

// StaffRequestRepository handles database operations for staff requests
type StaffRequestRepository struct {
	db *pgxpool.Pool
}

// NewStaffRequestRepository creates a new staff request repository
func NewStaffRequestRepository(db *pgxpool.Pool) *StaffRequestRepository {
	return &StaffRequestRepository{
		db: db,
	}
}

const staffRequestColumns = `
	id, department_id, position, description, number_of_staff,
	gender_preference, urgency, status, fulfilled_count, created_at, updated_at`

const getStaffRequestQuery = `SELECT` + staffRequestColumns + `
	FROM staff_requests WHERE id = $1`

func scanStaffRequest(row pgx.Row) (*models.StaffRequest, error) {
	var s models.StaffRequest
	err := row.Scan(
		&s.ID,
		&s.DepartmentID,
		&s.Position,
		&s.Description,
		&s.NumberOfStaff,
		&s.GenderPreference,
		&s.Urgency,
		&s.Status,
		&s.FulfilledCount,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persists a new staff request
func (r *StaffRequestRepository) Create(ctx context.Context, request *models.StaffRequest) error {
	query := `
		INSERT INTO staff_requests (
			department_id, position, description, number_of_staff,
			gender_preference, urgency, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fulfilled_count, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		request.DepartmentID, request.Position, request.Description, request.NumberOfStaff,
		request.GenderPreference, request.Urgency, request.Status,
	).Scan(&request.ID, &request.FulfilledCount, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating staff request: %w", err)
	}

	return nil
}

// GetByID retrieves a staff request by ID
func (r *StaffRequestRepository) GetByID(ctx context.Context, id int64) (*models.StaffRequest, error) {
	request, err := scanStaffRequest(r.db.QueryRow(ctx, getStaffRequestQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving staff request: %w", err)
	}

	return request, nil
}

// List retrieves staff requests, optionally filtered by status and department
func (r *StaffRequestRepository) List(ctx context.Context, status models.StaffRequestStatus, departmentID int64) ([]*models.StaffRequest, error) {
	query := `SELECT` + staffRequestColumns + `
		FROM staff_requests
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = 0 OR department_id = $2)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, string(status), departmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing staff requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.StaffRequest
	for rows.Next() {
		s, err := scanStaffRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus persists an office decision on a request
func (r *StaffRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.StaffRequestStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE staff_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating staff request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffRequestNotFound
	}

	return nil
}

// IncrementFulfillment adds one fulfilled assignment to the request as a
// single conditional update, flipping status to FULFILLED when the count
// reaches the requested total. A request already at its total is left
// untouched and reported as overfulfilled.
func (r *StaffRequestRepository) IncrementFulfillment(ctx context.Context, id int64) (*models.StaffRequest, error) {
	query := `
		UPDATE staff_requests
		SET fulfilled_count = fulfilled_count + 1,
		    status = CASE WHEN fulfilled_count + 1 = number_of_staff THEN 'FULFILLED' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1 AND fulfilled_count < number_of_staff
		RETURNING` + staffRequestColumns

	request, err := scanStaffRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the id is unknown or the request is already full
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrOverfulfilled
		}
		return nil, fmt.Errorf("error incrementing fulfillment: %w", err)
	}

	return request, nil
}

// DecrementFulfillment removes one fulfilled assignment, reverting a
// FULFILLED request to APPROVED. The count never goes below zero.
func (r *StaffRequestRepository) DecrementFulfillment(ctx context.Context, id int64) (*models.StaffRequest, error) {
	query := `
		UPDATE staff_requests
		SET fulfilled_count = fulfilled_count - 1,
		    status = CASE WHEN status = 'FULFILLED' THEN 'APPROVED' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1 AND fulfilled_count > 0
		RETURNING` + staffRequestColumns

	request, err := scanStaffRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrNothingFulfilled
		}
		return nil, fmt.Errorf("error decrementing fulfillment: %w", err)
	}

	return request, nil
}

// RecordAssignment stores the audit trail entry tying a graduate to the
// staff request their assignment fulfilled
func (r *StaffRequestRepository) RecordAssignment(ctx context.Context, graduateID, requestID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO assignments (graduate_profile_id, staff_request_id)
		VALUES ($1, $2)`,
		graduateID, requestID)
	if err != nil {
		return fmt.Errorf("error recording assignment: %w", err)
	}
	return nil
}
