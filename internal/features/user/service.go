package user

import (
	"context"
	"time"

	"ews-reports/internal/common/ident"
)

type UserService interface {
	CreateUser(ctx context.Context, req *CreateRequest) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, upd *Update) (*User, error)
	DeleteUser(ctx context.Context, id string) (*User, error)
}

type UserServiceImpl struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req *CreateRequest) (*User, error) {
	user := &User{
		ID:         ident.New(),
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
		Role:       req.Role,
		CreatedAt:  time.Now(),
	}
	if user.Role == "" {
		user.Role = RoleUser
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, upd *Update) (*User, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (*User, error) {
	return s.repo.Delete(ctx, id)
}
