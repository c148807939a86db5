package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cadastro/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
// The database must be opened with TranslateError enabled so unique
// index violations surface as gorm.ErrDuplicatedKey.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. The storage engine assigns the id and both
// timestamps; its unique index on email is the sole arbiter of
// duplicates, including races between concurrent creates.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetAll retrieves all users ordered by ascending id.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by id, or (nil, nil) when no such row exists.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// Update applies the supplied fields to an existing user and returns the
// updated row. The row is loaded and re-saved even for an empty partial,
// so updatedAt refreshes on every successful call.
func (r *GORMUserRepository) Update(id uint, input models.UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %d for update: %w", id, err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
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

	if err := r.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &user, nil
}

// Delete removes a user by id. Deleting a missing id always reports
// ErrNotFound, never silent success.
func (r *GORMUserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
