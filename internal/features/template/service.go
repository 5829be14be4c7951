package template

import (
	"context"
	"time"

	"ews-reports/internal/common/ident"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, req *CreateRequest) (*Template, error)
	ListTemplates(ctx context.Context) ([]Template, error)
	UpdateTemplate(ctx context.Context, id string, upd *Update) (*Template, error)
	DeleteTemplate(ctx context.Context, id string) (*Template, error)
}

type TemplateServiceImpl struct {
	repo TemplateRepository
}

func NewTemplateService(repo TemplateRepository) TemplateService {
	return &TemplateServiceImpl{repo: repo}
}

func (s *TemplateServiceImpl) CreateTemplate(ctx context.Context, req *CreateRequest) (*Template, error) {
	now := time.Now()

	template := &Template{
		ID:          ident.New(),
		Name:        req.Name,
		Description: req.Description,
		Department:  req.Department,
		Content:     req.Content,
		IsDefault:   req.IsDefault,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateServiceImpl) ListTemplates(ctx context.Context) ([]Template, error) {
	return s.repo.List(ctx)
}

func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, id string, upd *Update) (*Template, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id string) (*Template, error) {
	return s.repo.Delete(ctx, id)
}
