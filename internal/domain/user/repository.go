package user

import "context"

type Repository interface {
	// Create fails with ErrDuplicateID when the user id is taken.
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
}
