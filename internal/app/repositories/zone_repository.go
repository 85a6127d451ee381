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

// ZoneRepository handles database operations for zones
type ZoneRepository struct {
	db *pgxpool.Pool
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *pgxpool.Pool) *ZoneRepository {
	return &ZoneRepository{
		db: db,
	}
}

// GetByID retrieves a zone by ID
func (r *ZoneRepository) GetByID(ctx context.Context, id int64) (*models.Zone, error) {
	var zone models.Zone
	err := r.db.QueryRow(ctx,
		`SELECT id, name, code, region FROM zones WHERE id = $1`, id).Scan(
		&zone.ID,
		&zone.Name,
		&zone.Code,
		&zone.Region,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrZoneNotFound
		}
		return nil, fmt.Errorf("error retrieving zone: %w", err)
	}

	return &zone, nil
}

// GetAll retrieves all zones
func (r *ZoneRepository) GetAll(ctx context.Context) ([]*models.Zone, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code, region FROM zones ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving zones: %w", err)
	}
	defer rows.Close()

	var zones []*models.Zone
	for rows.Next() {
		var zone models.Zone
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.Code, &zone.Region); err != nil {
			return nil, err
		}
		zones = append(zones, &zone)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

// ExistsByID checks whether a zone exists
func (r *ZoneRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM zones WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking zone existence: %w", err)
	}
	return exists, nil
}
