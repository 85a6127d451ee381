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

// DepartmentRepository handles database operations for service departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// GetByID retrieves a service department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.ServiceDepartment, error) {
	var department models.ServiceDepartment
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description FROM service_departments WHERE id = $1`, id).Scan(
		&department.ID,
		&department.Name,
		&department.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all service departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.ServiceDepartment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM service_departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.ServiceDepartment
	for rows.Next() {
		var department models.ServiceDepartment
		if err := rows.Scan(&department.ID, &department.Name, &department.Description); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// ExistsByID checks whether a service department exists
func (r *DepartmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM service_departments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}
