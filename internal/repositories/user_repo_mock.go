package repositories

import (
	"sort"
	"sync"
	"time"

	"cadastro/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It mirrors the storage semantics of the GORM implementation, including
// the email uniqueness invariant and never-reused ids, so the service can
// run without a database.
type MockUserRepository struct {
	users  map[uint]models.User
	nextID uint
	mu     sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[uint]models.User),
		nextID: 1,
	}
}

// Create adds a new user, assigning a fresh id and both timestamps.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

// GetAll returns all users ordered by ascending id.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		userList = append(userList, u)
	}
	sort.Slice(userList, func(i, j int) bool { return userList[i].ID < userList[j].ID })
	return userList, nil
}

// GetByID returns a user by id, or (nil, nil) when absent.
func (r *MockUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Update applies the supplied fields to an existing user.
func (r *MockUserRepository) Update(id uint, input models.UpdateUserInput) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if input.Email != nil {
		for otherID, u := range r.users {
			if otherID != id && u.Email == *input.Email {
				return nil, ErrDuplicateEmail
			}
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Status != nil {
		user.Status = *input.Status
	}

	user.UpdatedAt = time.Now()
	r.users[id] = user
	return &user, nil
}

// Delete removes a user by id.
func (r *MockUserRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}
