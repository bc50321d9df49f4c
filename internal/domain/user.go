package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleBusinessOwner UserRole = "business_owner"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	Role         UserRole   `json:"role"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID      string    `json:"id"`
	Name    *string   `json:"name"`
	Email   *string   `json:"email"`
	Active  *bool     `json:"active"`
	Role    *UserRole `json:"role"`
	Deleted *bool     `json:"deleted"`
}

type Claims struct {
	UserID     string
	UserName   string
	UserEmail  string
	UserActive bool
	UserRole   UserRole
	jwt.RegisteredClaims
}
