package mysql

import (
	"context"
	"errors"

	userDomain "weldtrack-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return userDomain.ErrDuplicateID
	}
	return err
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) CountByStatus(ctx context.Context, s userDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("status = ?", s).
		Count(&n)
	return n, res.Error
}
