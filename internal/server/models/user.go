// Package models defines server-side data models persisted in the database
// and the partial-update payloads accepted for them.
package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPatch carries the fields an admin may change on an account.
// Nil fields are left untouched; Password is plaintext and is rehashed.
type UserPatch struct {
	FullName *string `json:"fullName"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

// UserSummary is the public view of a user embedded in other resources.
type UserSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
