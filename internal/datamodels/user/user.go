package user

import (
	"context"
	"time"
)

// User 用户模型
type User struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"size:64;not null"`
	Email        string    `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string    `gorm:"size:255;not null"` // bcrypt，内含盐
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repository 用户仓储接口
type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
}
