package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cadastro/internal/models"
	"cadastro/internal/repositories"
	"cadastro/internal/services"
	"cadastro/internal/validation"
)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreate)
	userRoutes.Get("/", h.HandleList)
	userRoutes.Get("/:id", h.HandleGet)
	userRoutes.Put("/:id", h.HandleUpdate)
	userRoutes.Delete("/:id", h.HandleDelete)
}

// HandleCreate handles POST /users.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := h.userService.CreateUser(input)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleList handles GET /users.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(users)
}

// HandleGet handles GET /users/:id.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		return h.renderError(c, err)
	}
	if user == nil {
		return notFound(c)
	}
	return c.JSON(user)
}

// HandleUpdate handles PUT /users/:id.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	var input models.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := h.userService.UpdateUser(id, input)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(user)
}

// HandleDelete handles DELETE /users/:id.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	if err := h.userService.DeleteUser(id); err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User deleted",
	})
}

// renderError is the single place mapping the error taxonomy onto HTTP
// status codes. Unclassified failures are logged and collapsed to a
// generic 500 so no internal detail leaks.
func (h *UserHandler) renderError(c *fiber.Ctx, err error) error {
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"issues":  validationErr.Issues,
		})
	}
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Unique constraint failed",
			"meta":    fiber.Map{"target": []string{"email"}},
		})
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c)
	}

	log.Printf("Unexpected error handling user request: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "User not found",
	})
}

// parseID reads the :id route parameter. A non-numeric or negative id
// names no existing resource, so callers map it to a 404.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
