package dto

import "github.com/temidayo/servecorps/internal/app/models"

// IngestBatchRequest carries one parsed roster upload. Each row is a
// mapping of declared column name to raw string value; decoding the
// physical CSV/XLSX bytes into this shape happens upstream.
type IngestBatchRequest struct {
	Rows []map[string]string `json:"rows" binding:"required"`
}

// RejectedRow reports one roster row that failed validation
type RejectedRow struct {
	RowIndex int      `json:"rowIndex" example:"2"` // 1-based position in the upload
	Errors   []string `json:"errors"`
}

// BatchSummary reports the totals for one ingestion run.
// TotalRows always equals AcceptedCount + RejectedCount; StoredRows is the
// persisted row count read back from the store for the batch.
type BatchSummary struct {
	BatchID       string `json:"batchId" example:"1d3f9c0a-8b9e-4f4d-9a36-1f6a2b9d0c11"`
	TotalRows     int    `json:"totalRows" example:"120"`
	AcceptedCount int    `json:"acceptedCount" example:"117"`
	RejectedCount int    `json:"rejectedCount" example:"3"`
	StoredRows    int64  `json:"storedRows" example:"117"`
}

// BatchResult is the full outcome of a batch ingestion
type BatchResult struct {
	Accepted []models.RosterRow `json:"accepted"`
	Rejected []RejectedRow      `json:"rejected"`
	Summary  BatchSummary       `json:"summary"`
}

// RosterSearchQuery carries the four self-asserted identity inputs used by
// the claim matcher. All four are required; matching is exact.
type RosterSearchQuery struct {
	ZoneID      int64  `form:"zoneId" binding:"required,min=1"`
	Surname     string `form:"surname" binding:"required"`
	Gender      string `form:"gender" binding:"required"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
}
