package client

import (
	"sync"
	"time"
)

// UserStore holds the authoritative client-side copy of the user
// collection. Every mutating call performs the HTTP request first and
// reconciles local state only on success, so the store is never
// optimistically ahead of confirmed server state.
type UserStore struct {
	api   API
	users []User
	mu    sync.RWMutex
}

// NewUserStore creates a store backed by the given API transport.
func NewUserStore(api API) *UserStore {
	return &UserStore{api: api}
}

// Load populates the store with the server's full collection.
func (s *UserStore) Load() error {
	users, err := s.api.ListUsers()
	if err != nil {
		return err
	}
	for i := range users {
		normalizeDates(&users[i])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	return nil
}

// Users returns a copy of the in-memory collection.
func (s *UserStore) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// GetByID is a synchronous lookup against the in-memory copy.
func (s *UserStore) GetByID(id uint) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Add creates the user on the server, then appends it locally.
func (s *UserStore) Add(input UserInput) (User, error) {
	created, err := s.api.CreateUser(input)
	if err != nil {
		return User{}, err
	}
	normalizeDates(created)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *created)
	return *created, nil
}

// Update applies a partial update on the server, then replaces the local
// copy by id.
func (s *UserStore) Update(id uint, input UserInput) (User, error) {
	updated, err := s.api.UpdateUser(id, input)
	if err != nil {
		return User{}, err
	}
	normalizeDates(updated)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users[i] = *updated
			break
		}
	}
	return *updated, nil
}

// Remove deletes the user on the server, then filters it out locally.
func (s *UserStore) Remove(id uint) error {
	if err := s.api.DeleteUser(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	return nil
}

// normalizeDates rewrites the timestamp fields to date-only strings
// regardless of the wire format received.
func normalizeDates(u *User) {
	u.CreatedAt = dateOnly(u.CreatedAt)
	u.UpdatedAt = dateOnly(u.UpdatedAt)
	u.LastLogin = dateOnly(u.LastLogin)
}

func dateOnly(value string) string {
	if value == "" {
		return value
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.Format("2006-01-02")
	}
	return value
}
