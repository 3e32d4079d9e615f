package models

import "time"

// User represents a registered shopper. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the subset of a user record safe to return to clients.
type PublicUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Public returns the client-facing projection without the creation time.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// PublicWithCreatedAt returns the projection including the creation time.
func (u *User) PublicWithCreatedAt() PublicUser {
	t := u.CreatedAt
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: &t}
}
