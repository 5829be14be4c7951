package task

import "time"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a unit of work, optionally tied to a report. ReportID is a weak
// reference. CompletedAt is set exactly when the status transitions into
// done and is never client-settable.
type Task struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Status      Status     `json:"status" bson:"status"`
	Priority    Priority   `json:"priority" bson:"priority"`
	Assignee    string     `json:"assignee" bson:"assignee"`
	Department  string     `json:"department" bson:"department"`
	DueDate     *time.Time `json:"dueDate" bson:"due_date"`
	CompletedAt *time.Time `json:"completedAt" bson:"completed_at"`
	ReportID    string     `json:"reportId" bson:"report_id"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}

type CreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Assignee    string     `json:"assignee"`
	Department  string     `json:"department"`
	DueDate     *time.Time `json:"dueDate"`
	ReportID    string     `json:"reportId"`
}

// Update enumerates the fields a PUT may change. completedAt is filled in
// by the service on a transition into done, never by the client.
type Update struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *Status     `json:"status"`
	Priority    *Priority   `json:"priority"`
	Assignee    *string     `json:"assignee"`
	Department  *string     `json:"department"`
	DueDate     *time.Time  `json:"dueDate"`
	ReportID    *string     `json:"reportId"`
	completedAt *time.Time
}

type Filter struct {
	Status   string
	Assignee string
	Priority string
}

func (u *Update) apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Assignee != nil {
		t.Assignee = *u.Assignee
	}
	if u.Department != nil {
		t.Department = *u.Department
	}
	if u.DueDate != nil {
		t.DueDate = u.DueDate
	}
	if u.ReportID != nil {
		t.ReportID = *u.ReportID
	}
	if u.completedAt != nil {
		t.CompletedAt = u.completedAt
	}
}
