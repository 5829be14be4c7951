package comment

import (
	"context"
	"testing"

	"ews-reports/internal/database"
)

func TestAddAndListComments(t *testing.T) {
	repo, err := NewCommentRepository(&database.Database{Backend: database.BackendMemory})
	if err != nil {
		t.Fatalf("NewCommentRepository() error = %v", err)
	}
	svc := NewCommentService(repo)
	ctx := context.Background()

	first, err := svc.AddComment(ctx, "r1", &CreateRequest{Text: "erste Rückmeldung", Author: "Anna"})
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if first.ID == "" || first.ReportID != "r1" {
		t.Fatalf("AddComment() = %+v", first)
	}

	if _, err := svc.AddComment(ctx, "r1", &CreateRequest{Text: "zweite", Author: "Ben"}); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if _, err := svc.AddComment(ctx, "r2", &CreateRequest{Text: "anderer Report"}); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	got, err := svc.ListComments(ctx, "r1")
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListComments() returned %d comments, want 2", len(got))
	}
	// Oldest first.
	if got[0].Text != "erste Rückmeldung" || got[1].Text != "zweite" {
		t.Errorf("comments out of order: %q, %q", got[0].Text, got[1].Text)
	}

	empty, err := svc.ListComments(ctx, "r3")
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListComments() for unknown report returned %d comments", len(empty))
	}
}
