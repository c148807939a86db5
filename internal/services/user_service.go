package services

import (
	"log"

	"github.com/google/uuid"

	"cadastro/internal/models"
	"cadastro/internal/repositories"
	"cadastro/internal/validation"
	"cadastro/pkg/rabbitmq"
)

// UserService handles business logic for user records. It holds no state
// of its own: each call validates the payload, delegates to the
// repository and propagates either result unchanged.
type UserService struct {
	repo     repositories.UserRepository
	validate *validation.Validator
	mqClient *rabbitmq.Client // optional; nil disables event publishing
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		repo:     repo,
		validate: validation.New(),
		mqClient: mqClient,
	}
}

// CreateUser validates and persists a new user, then publishes a
// user.created event. Publish failures are logged and never fail the
// request; the created user is already durable at that point.
func (s *UserService) CreateUser(input models.CreateUserInput) (*models.User, error) {
	input, err := s.validate.ValidateCreate(input)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		City:   input.City,
		Status: input.Status,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"eventID": uuid.New().String(),
			"userID":  user.ID,
			"email":   user.Email,
			"city":    user.City,
			"status":  user.Status,
		}
		if err := s.mqClient.PublishUserCreated(event); err != nil {
			log.Printf("Warning: Failed to publish user created event for user %d: %v", user.ID, err)
		}
	}

	return user, nil
}

// GetAllUsers retrieves all users ordered by ascending id.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user, or (nil, nil) when absent.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser validates a partial payload and applies it to an existing
// user. An empty payload is a valid no-op update that still refreshes
// updatedAt.
func (s *UserService) UpdateUser(id uint, input models.UpdateUserInput) (*models.User, error) {
	input, err := s.validate.ValidateUpdate(input)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(id, input)
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(id uint) error {
	return s.repo.Delete(id)
}
