package usermock

import (
	"context"

	domain "weldtrack-backend/internal/domain/user"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	SaveFn          func(ctx context.Context, u *domain.User) error
	GetByUserIDFn   func(ctx context.Context, userID string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]domain.User, error)
	CountByStatusFn func(ctx context.Context, s domain.Status) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, nil
}
