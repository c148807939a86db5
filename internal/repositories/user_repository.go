package repositories

import "cadastro/internal/models"

// UserRepository defines the interface for user data access.
// GetByID signals absence with (nil, nil): a missing row is a valid
// "no result" at this layer, not a failure.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	Update(id uint, input models.UpdateUserInput) (*models.User, error)
	Delete(id uint) error
}
