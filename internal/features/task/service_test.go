package task

import (
	"context"
	"testing"
	"time"

	"ews-reports/internal/database"
)

func newTestService(t *testing.T) TaskService {
	t.Helper()
	repo, err := NewTaskRepository(&database.Database{Backend: database.BackendMemory})
	if err != nil {
		t.Fatalf("NewTaskRepository() error = %v", err)
	}
	return NewTaskService(repo)
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.CreateTask(context.Background(), &CreateRequest{Title: "Inventur vorbereiten"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if task.ID == "" {
		t.Error("CreateTask() assigned no ID")
	}
	if task.Status != StatusTodo {
		t.Errorf("Status = %s, want todo", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority = %s, want medium", task.Priority)
	}
	if task.CompletedAt != nil {
		t.Errorf("CompletedAt = %v, want nil", task.CompletedAt)
	}
}

func TestUpdateTaskCompletionStamp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	done := StatusDone
	inProgress := StatusInProgress
	title := "renamed"

	t.Run("transition into done sets completedAt", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, &CreateRequest{Title: "t"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}

		updated, err := svc.UpdateTask(ctx, task.ID, &Update{Status: &done})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
		if updated.CompletedAt == nil {
			t.Fatal("CompletedAt not set on transition into done")
		}
	})

	t.Run("already done keeps original stamp", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, &CreateRequest{Title: "t"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		first, err := svc.UpdateTask(ctx, task.ID, &Update{Status: &done})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}

		time.Sleep(5 * time.Millisecond)
		second, err := svc.UpdateTask(ctx, task.ID, &Update{Status: &done})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
		if !second.CompletedAt.Equal(*first.CompletedAt) {
			t.Errorf("CompletedAt moved from %v to %v on a repeated done update", first.CompletedAt, second.CompletedAt)
		}
	})

	t.Run("non-status update leaves completedAt alone", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, &CreateRequest{Title: "t"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}

		updated, err := svc.UpdateTask(ctx, task.ID, &Update{Title: &title})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
		if updated.CompletedAt != nil {
			t.Errorf("CompletedAt = %v, want nil", updated.CompletedAt)
		}
	})

	t.Run("reopening does not clear completedAt", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, &CreateRequest{Title: "t"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if _, err := svc.UpdateTask(ctx, task.ID, &Update{Status: &done}); err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}

		reopened, err := svc.UpdateTask(ctx, task.ID, &Update{Status: &inProgress})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
		if reopened.CompletedAt == nil {
			t.Error("reopening cleared CompletedAt")
		}
	})
}
