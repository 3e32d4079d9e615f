package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shoply/server/models"
	"github.com/shoply/server/utils"
)

// UserStore keeps user records in process memory. Nothing survives a restart.
// The mutex protects the slice itself; uniqueness checks are the caller's
// responsibility (FindByEmail before Create), matching the original flow.
type UserStore struct {
	mu    sync.RWMutex
	users []*models.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// FindByEmail returns the user with the given email, or nil. Emails are
// compared case-sensitively as stored.
func (s *UserStore) FindByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// FindByID returns the user with the given id, or nil.
func (s *UserStore) FindByID(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Create hashes the password, assigns a fresh id and appends the record.
func (s *UserStore) Create(email, password, name string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()
	return user, nil
}

// GetAllUsers returns every user in insertion order.
func (s *UserStore) GetAllUsers() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, len(s.users))
	copy(out, s.users)
	return out
}

// DeleteUser removes the user with the given id. Returns true iff a record
// existed and was removed.
func (s *UserStore) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}
