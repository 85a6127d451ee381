package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
	"github.com/temidayo/servecorps/internal/pkg/validation"
)

// rosterStore is the roster persistence surface the service needs
type rosterStore interface {
	Create(ctx context.Context, row *models.RosterRow) error
	GetByID(ctx context.Context, id int64) (*models.RosterRow, error)
	Search(ctx context.Context, zoneID int64, surname, gender, phoneNumber string) ([]*models.RosterRow, error)
	CountByBatch(ctx context.Context, batchID string) (int64, error)
}

// zoneStore is the zone lookup surface the service needs
type zoneStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// RosterService coordinates batch ingestion and claim search
type RosterService struct {
	rosterRepo rosterStore
	zoneRepo   zoneStore
	logger     zerolog.Logger
}

// NewRosterService creates a new RosterService
func NewRosterService(rosterRepo rosterStore, zoneRepo zoneStore, logger zerolog.Logger) *RosterService {
	return &RosterService{
		rosterRepo: rosterRepo,
		zoneRepo:   zoneRepo,
		logger:     logger,
	}
}

// IngestBatch validates and stores one parsed roster upload for a zone.
// Every row is validated independently: valid rows are persisted and become
// claimable immediately, invalid rows are reported with their 1-based index
// and full error list. A bad row never aborts the batch; only
// infrastructure failures return an error.
func (s *RosterService) IngestBatch(ctx context.Context, zoneID int64, rows []map[string]string) (*dto.BatchResult, error) {
	exists, err := s.zoneRepo.ExistsByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("error checking zone: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrZoneNotFound
	}

	batchID := uuid.New().String()
	result := &dto.BatchResult{
		Accepted: []models.RosterRow{},
		Rejected: []dto.RejectedRow{},
	}

	for i, raw := range rows {
		rowIndex := i + 1

		check := validation.ValidateRosterRow(raw)
		if !check.IsValid {
			result.Rejected = append(result.Rejected, dto.RejectedRow{
				RowIndex: rowIndex,
				Errors:   check.Errors,
			})
			continue
		}

		// Typed conversion happens only after the row passes validation;
		// parser-inferred types are never trusted.
		year, err := strconv.Atoi(strings.TrimSpace(raw[validation.ColGraduationYear]))
		if err != nil {
			result.Rejected = append(result.Rejected, dto.RejectedRow{
				RowIndex: rowIndex,
				Errors:   []string{"Graduation Year must be a number"},
			})
			continue
		}

		row := models.RosterRow{
			ZoneID:             zoneID,
			BatchID:            batchID,
			FirstName:          strings.TrimSpace(raw[validation.ColFirstName]),
			Surname:            strings.TrimSpace(raw[validation.ColSurname]),
			Gender:             strings.TrimSpace(raw[validation.ColGender]),
			PhoneNumber:        strings.TrimSpace(raw[validation.ColPhoneNumber]),
			University:         strings.TrimSpace(raw[validation.ColUniversity]),
			CourseOfStudy:      strings.TrimSpace(raw[validation.ColCourseOfStudy]),
			GraduationYear:     year,
			Fellowship:         strings.TrimSpace(raw[validation.ColFellowship]),
			ZonalPastor:        strings.TrimSpace(raw[validation.ColZonalPastor]),
			ChapterPastorName:  strings.TrimSpace(raw[validation.ColChapterPastorName]),
			ChapterPastorPhone: strings.TrimSpace(raw[validation.ColChapterPastorPhone]),
			ChapterPastorEmail: strings.TrimSpace(raw[validation.ColChapterPastorEmail]),
		}

		if err := s.rosterRepo.Create(ctx, &row); err != nil {
			return nil, fmt.Errorf("error storing roster row %d: %w", rowIndex, err)
		}

		result.Accepted = append(result.Accepted, row)
	}

	stored, err := s.rosterRepo.CountByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("error counting stored batch rows: %w", err)
	}

	result.Summary = dto.BatchSummary{
		BatchID:       batchID,
		TotalRows:     len(rows),
		AcceptedCount: len(result.Accepted),
		RejectedCount: len(result.Rejected),
		StoredRows:    stored,
	}

	s.logger.Info().
		Str("batchId", batchID).
		Int64("zoneId", zoneID).
		Int("totalRows", result.Summary.TotalRows).
		Int("accepted", result.Summary.AcceptedCount).
		Int("rejected", result.Summary.RejectedCount).
		Int64("stored", stored).
		Msg("Roster batch ingested")

	return result, nil
}

// Search finds claimable roster rows by exact match on the registrant's
// self-asserted identity. Claimed rows are included so a graduate sees
// "this record is taken" instead of a false negative; no rows matching is
// an empty result, not an error.
func (s *RosterService) Search(ctx context.Context, query *dto.RosterSearchQuery) ([]*models.RosterRow, error) {
	if query.ZoneID <= 0 || query.Surname == "" || query.Gender == "" || query.PhoneNumber == "" {
		verr := apperrors.NewValidationError()
		if query.ZoneID <= 0 {
			verr.Add("zoneId", "Zone is required")
		}
		if query.Surname == "" {
			verr.Add("surname", "Surname is required")
		}
		if query.Gender == "" {
			verr.Add("gender", "Gender is required")
		}
		if query.PhoneNumber == "" {
			verr.Add("phoneNumber", "Phone number is required")
		}
		return nil, verr
	}

	rows, err := s.rosterRepo.Search(ctx, query.ZoneID, query.Surname, query.Gender, query.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("error searching roster: %w", err)
	}

	if rows == nil {
		rows = []*models.RosterRow{}
	}
	return rows, nil
}
