package task

import (
	"context"
	"time"

	"ews-reports/internal/common/ident"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *CreateRequest) (*Task, error)
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context, filter Filter) ([]Task, error)
	UpdateTask(ctx context.Context, id string, upd *Update) (*Task, error)
	DeleteTask(ctx context.Context, id string) (*Task, error)
}

type TaskServiceImpl struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) TaskService {
	return &TaskServiceImpl{repo: repo}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *CreateRequest) (*Task, error) {
	now := time.Now()

	task := &Task{
		ID:          ident.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		Department:  req.Department,
		DueDate:     req.DueDate,
		ReportID:    req.ReportID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Status == "" {
		task.Status = StatusTodo
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id string) (*Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter Filter) ([]Task, error) {
	return s.repo.List(ctx, filter)
}

// UpdateTask stamps completedAt when the status transitions into done.
// A task already done keeps its original completion time.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id string, upd *Update) (*Task, error) {
	if upd.Status != nil && *upd.Status == StatusDone {
		existing, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.Status != StatusDone {
			now := time.Now()
			upd.completedAt = &now
		}
	}
	return s.repo.Update(ctx, id, upd)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) (*Task, error) {
	return s.repo.Delete(ctx, id)
}
