package domain

import (
	"errors"
	"time"
)

var ErrAdminExists = errors.New("admin already exists")
var ErrAdminNotFound = errors.New("admin not found")
var ErrInvalidCredentials = errors.New("invalid username or password")

// Admin is the single privileged actor type. There is no role hierarchy:
// holding a valid token for an existing Admin grants full content access.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
