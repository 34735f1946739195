package account

import (
	"context"
	"errors"

	"weldtrack-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct{ repo user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	UserID      string `json:"id"`
	Name        string `json:"name"`
	Password    string `json:"password"`
	Workstation string `json:"workstation"`
}

// Register creates a WORKER account in PENDING status; an admin must
// activate it before login succeeds. The duplicate-id case surfaces
// distinctly from generic failure.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	if in.UserID == "" || in.Password == "" {
		return nil, errors.New("invalid input")
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	rec := &user.User{
		UserID:       in.UserID,
		Name:         in.Name,
		PasswordHash: hash,
		Workstation:  in.Workstation,
		Role:         user.RoleWorker,
		Status:       user.StatusPending,
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Login authenticates an account. "guest" yields the synthetic
// read-only identity without touching the store. Unknown ids and wrong
// passwords are indistinguishable; a correct password on a not-yet-
// activated account reports the pending state separately so the UI can
// say so.
func (u *Usecase) Login(ctx context.Context, userID, password string) (*user.User, error) {
	if userID == "guest" {
		return user.Guest(), nil
	}
	rec, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if !verifyPassword(password, rec.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}
	if rec.Status != user.StatusActive {
		return nil, user.ErrAccountPending
	}
	return rec, nil
}

// EnsureSeedAdmin creates the built-in admin account on first start.
// An existing record, whatever its state, is left alone.
func (u *Usecase) EnsureSeedAdmin(ctx context.Context, password string) error {
	_, err := u.repo.GetByUserID(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, user.ErrNotFound) {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	return u.repo.Create(ctx, &user.User{
		UserID:       "admin",
		Name:         "System Admin",
		PasswordHash: hash,
		Workstation:  "OFFICE",
		Role:         user.RoleAdmin,
		Status:       user.StatusActive,
	})
}

func (u *Usecase) ListUsers(ctx context.Context) ([]user.User, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) GetUser(ctx context.Context, userID string) (*user.User, error) {
	rec, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}
