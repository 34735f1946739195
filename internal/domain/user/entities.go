package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateID        = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account is pending approval")
)

type Role string

const (
	RoleGuest  Role = "GUEST"
	RoleWorker Role = "WORKER"
	RoleAdmin  Role = "ADMIN"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusRejected Status = "REJECTED"
)

// User is one account record. UserID is the username (employee number).
// PasswordHash stores an argon2id-encoded hash, never the plaintext.
type User struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID       string         `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"id"`
	Name         string         `gorm:"size:64" json:"name"`
	PasswordHash string         `gorm:"type:text" json:"-"`
	Workstation  string         `gorm:"size:8" json:"workstation"`
	Role         Role           `gorm:"type:enum('GUEST','WORKER','ADMIN');default:'WORKER'" json:"role"`
	Status       Status         `gorm:"type:enum('PENDING','ACTIVE','REJECTED');default:'PENDING'" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Guest is the synthetic read-only identity; it is never persisted.
func Guest() *User {
	return &User{UserID: "guest", Name: "Guest Viewer", Workstation: "VIEWER", Role: RoleGuest, Status: StatusActive}
}
