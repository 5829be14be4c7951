package comment

import "time"

// Comment is immutable once created; there is no update surface.
// ReportID is a weak reference, the referenced report may be gone.
type Comment struct {
	ID          string    `json:"id" bson:"_id"`
	ReportID    string    `json:"reportId" bson:"report_id"`
	Text        string    `json:"text" bson:"text"`
	Author      string    `json:"author" bson:"author"`
	AuthorEmail string    `json:"authorEmail" bson:"author_email"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

type CreateRequest struct {
	Text        string `json:"text"`
	Author      string `json:"author"`
	AuthorEmail string `json:"authorEmail"`
}
