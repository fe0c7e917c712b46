package handlers

import (
	"errors"
	"log"

	"pizzeria/internal/models"
	"pizzeria/internal/repositories"
	"pizzeria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts. POST on the collection
// route is registration.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/", h.HandleList)
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.All("/:id", h.HandleByID)
}

// registerRequest is the whitelisted body for registration.
type registerRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=6"`
	Name     string         `json:"name" validate:"required"`
	Surname  string         `json:"surname" validate:"required"`
	Address  models.Address `json:"address" validate:"required"`
}

// profileRequest is the whitelisted body for profile updates. The password is
// deliberately absent: a profile update must never touch the stored hash.
type profileRequest struct {
	Email   string         `json:"email" validate:"required,email"`
	Name    string         `json:"name" validate:"required"`
	Surname string         `json:"surname" validate:"required"`
	Address models.Address `json:"address" validate:"required"`
}

// HandleList retrieves all users.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// HandleRegister creates a new user account. The service hashes the password
// before anything is persisted.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	user := models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Surname:  req.Surname,
		Address:  req.Address,
	}
	created, err := h.service.Register(&user)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errorMessage": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleByID resolves the user first and then dispatches on the HTTP verb.
// Exactly one response is written per request.
func (h *UserHandler) HandleByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"errorMessage": "Cannot find user!",
			})
		}
		log.Printf("Error looking up user %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	switch c.Method() {
	case fiber.MethodGet:
		return c.Status(fiber.StatusOK).JSON(user)
	case fiber.MethodPut:
		return h.handleUpdate(c, user)
	case fiber.MethodDelete:
		return h.handleDelete(c, user)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"errorMessage": "Not found!",
		})
	}
}

func (h *UserHandler) handleUpdate(c *fiber.Ctx, user *models.User) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	user.Email = req.Email
	user.Name = req.Name
	user.Surname = req.Surname
	user.Address = req.Address

	updated, err := h.service.UpdateProfile(user)
	if err != nil {
		log.Printf("Error updating user %s: %v", user.ID, err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errorMessage": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *UserHandler) handleDelete(c *fiber.Ctx, user *models.User) error {
	if err := h.service.DeleteUser(user.ID); err != nil {
		log.Printf("Error deleting user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
