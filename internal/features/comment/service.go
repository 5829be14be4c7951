package comment

import (
	"context"
	"time"

	"ews-reports/internal/common/ident"
)

type CommentService interface {
	AddComment(ctx context.Context, reportID string, req *CreateRequest) (*Comment, error)
	ListComments(ctx context.Context, reportID string) ([]Comment, error)
}

type CommentServiceImpl struct {
	repo CommentRepository
}

func NewCommentService(repo CommentRepository) CommentService {
	return &CommentServiceImpl{repo: repo}
}

func (s *CommentServiceImpl) AddComment(ctx context.Context, reportID string, req *CreateRequest) (*Comment, error) {
	comment := &Comment{
		ID:          ident.New(),
		ReportID:    reportID,
		Text:        req.Text,
		Author:      req.Author,
		AuthorEmail: req.AuthorEmail,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, reportID string) ([]Comment, error) {
	return s.repo.ListByReport(ctx, reportID)
}
