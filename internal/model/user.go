package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a registered user with authentication material.
type User struct {
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
