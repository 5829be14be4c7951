package archive

import (
	"time"

	"ews-reports/internal/features/report"
)

// Record is an archived report. Data is a point-in-time snapshot of the
// original report and is never mutated; records are append-only.
type Record struct {
	ID         string        `json:"id" bson:"_id"`
	OriginalID string        `json:"originalId" bson:"original_id"`
	Week       string        `json:"week" bson:"week"`
	Department string        `json:"department" bson:"department"`
	Data       report.Report `json:"data" bson:"data"`
	ArchivedAt time.Time     `json:"archivedAt" bson:"archived_at"`
	ArchivedBy string        `json:"archivedBy" bson:"archived_by"`
}

// RetentionDays is the fixed sweep window: reports created more than
// twelve weeks ago are moved into the archive.
const RetentionDays = 84
