package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
	"github.com/temidayo/servecorps/internal/pkg/validation"
)

func validRosterRow() map[string]string {
	return map[string]string{
		validation.ColFirstName:          "John",
		validation.ColSurname:            "Doe",
		validation.ColGender:             "MALE",
		validation.ColPhoneNumber:        "+234 801 234 5678",
		validation.ColUniversity:         "University of Lagos",
		validation.ColCourseOfStudy:      "Computer Science",
		validation.ColGraduationYear:     "2025",
		validation.ColFellowship:         "Campus Fellowship",
		validation.ColZonalPastor:        "Pastor A",
		validation.ColChapterPastorName:  "Pastor B",
		validation.ColChapterPastorPhone: "+2348011112222",
		validation.ColChapterPastorEmail: "pastor.b@example.com",
	}
}

func newRosterService(roster *fakeRosterStore, zones *fakeZoneStore) *RosterService {
	return NewRosterService(roster, zones, zerolog.Nop())
}

func TestIngestBatchAllValid(t *testing.T) {
	svc := newRosterService(newFakeRosterStore(), newFakeZoneStore(1))

	result, err := svc.IngestBatch(context.Background(), 1, []map[string]string{
		validRosterRow(), validRosterRow(), validRosterRow(),
	})
	if err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}

	if result.Summary.TotalRows != 3 || result.Summary.AcceptedCount != 3 || result.Summary.RejectedCount != 0 {
		t.Fatalf("unexpected summary: %+v", result.Summary)
	}
	if result.Summary.StoredRows != 3 {
		t.Fatalf("stored rows = %d, want 3", result.Summary.StoredRows)
	}
	if result.Summary.BatchID == "" {
		t.Fatal("expected a batch id")
	}
	for _, row := range result.Accepted {
		if row.ID == 0 {
			t.Fatal("accepted row was not persisted")
		}
		if row.BatchID != result.Summary.BatchID {
			t.Fatalf("row batch id %q does not match summary %q", row.BatchID, result.Summary.BatchID)
		}
	}
}

func TestIngestBatchPartialSuccess(t *testing.T) {
	store := newFakeRosterStore()
	svc := newRosterService(store, newFakeZoneStore(1))

	bad := validRosterRow()
	bad[validation.ColGender] = "male" // lowercase is rejected
	bad[validation.ColSurname] = ""

	result, err := svc.IngestBatch(context.Background(), 1, []map[string]string{
		validRosterRow(), bad, validRosterRow(),
	})
	if err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}

	if got := result.Summary.AcceptedCount + result.Summary.RejectedCount; got != result.Summary.TotalRows {
		t.Fatalf("accepted+rejected = %d, want %d", got, result.Summary.TotalRows)
	}
	if result.Summary.StoredRows != int64(result.Summary.AcceptedCount) {
		t.Fatalf("stored rows = %d, want %d", result.Summary.StoredRows, result.Summary.AcceptedCount)
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejected row, got %d", len(result.Rejected))
	}

	rejected := result.Rejected[0]
	if rejected.RowIndex != 2 {
		t.Fatalf("rejected row index = %d, want 2 (1-based)", rejected.RowIndex)
	}
	if len(rejected.Errors) != 2 {
		t.Fatalf("expected both violations reported, got %v", rejected.Errors)
	}

	// Only the valid rows were stored
	if len(store.rows) != 2 {
		t.Fatalf("store has %d rows, want 2", len(store.rows))
	}
}

func TestIngestBatchAllowsDuplicates(t *testing.T) {
	store := newFakeRosterStore()
	svc := newRosterService(store, newFakeZoneStore(1))

	result, err := svc.IngestBatch(context.Background(), 1, []map[string]string{
		validRosterRow(), validRosterRow(),
	})
	if err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}
	if result.Summary.AcceptedCount != 2 {
		t.Fatalf("identical rows must both be accepted, got %d", result.Summary.AcceptedCount)
	}
}

func TestIngestBatchEmpty(t *testing.T) {
	svc := newRosterService(newFakeRosterStore(), newFakeZoneStore(1))

	result, err := svc.IngestBatch(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}
	if result.Summary.TotalRows != 0 || result.Summary.AcceptedCount != 0 || result.Summary.RejectedCount != 0 {
		t.Fatalf("unexpected summary for empty batch: %+v", result.Summary)
	}
}

func TestIngestBatchUnknownZone(t *testing.T) {
	svc := newRosterService(newFakeRosterStore(), newFakeZoneStore(1))

	_, err := svc.IngestBatch(context.Background(), 99, []map[string]string{validRosterRow()})
	if !errors.Is(err, apperrors.ErrZoneNotFound) {
		t.Fatalf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestIngestBatchNonNumericYear(t *testing.T) {
	svc := newRosterService(newFakeRosterStore(), newFakeZoneStore(1))

	bad := validRosterRow()
	bad[validation.ColGraduationYear] = "twenty twenty five"

	result, err := svc.IngestBatch(context.Background(), 1, []map[string]string{bad})
	if err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("expected row rejected, got %+v", result.Summary)
	}
}

func TestSearchReturnsClaimedRows(t *testing.T) {
	store := newFakeRosterStore()
	svc := newRosterService(store, newFakeZoneStore(1))

	result, err := svc.IngestBatch(context.Background(), 1, []map[string]string{validRosterRow()})
	if err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}
	rowID := result.Accepted[0].ID

	if err := store.claim(rowID); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	rows, err := svc.Search(context.Background(), &dto.RosterSearchQuery{
		ZoneID:      1,
		Surname:     "Doe",
		Gender:      "MALE",
		PhoneNumber: "+234 801 234 5678",
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].Claimed {
		t.Fatal("claimed row must still appear in search results")
	}
}

func TestSearchNoMatchIsEmptyNotError(t *testing.T) {
	svc := newRosterService(newFakeRosterStore(), newFakeZoneStore(1))

	rows, err := svc.Search(context.Background(), &dto.RosterSearchQuery{
		ZoneID:      1,
		Surname:     "Nobody",
		Gender:      "FEMALE",
		PhoneNumber: "+10000000",
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", rows)
	}
}

func TestSearchMissingInputs(t *testing.T) {
	svc := newRosterService(newFakeRosterStore(), newFakeZoneStore(1))

	_, err := svc.Search(context.Background(), &dto.RosterSearchQuery{ZoneID: 1, Gender: "MALE"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected surname and phoneNumber violations, got %+v", verr.Fields)
	}
}

func TestSearchIsCaseSensitive(t *testing.T) {
	store := newFakeRosterStore()
	svc := newRosterService(store, newFakeZoneStore(1))

	if _, err := svc.IngestBatch(context.Background(), 1, []map[string]string{validRosterRow()}); err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}

	rows, err := svc.Search(context.Background(), &dto.RosterSearchQuery{
		ZoneID:      1,
		Surname:     "doe", // stored as "Doe"
		Gender:      "MALE",
		PhoneNumber: "+234 801 234 5678",
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("surname match must be exact, got %d rows", len(rows))
	}
}
