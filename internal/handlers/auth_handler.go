package handlers

import (
	"errors"
	"log"

	"pizzeria/internal/middleware"
	"pizzeria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/session", middleware.AuthRequired(h.authService), h.HandleSession)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin validates submitted credentials and issues a JWT session token.
// Both rejection reasons collapse to the same 401 response.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)
		if errors.Is(err, services.ErrNoSuchUser) || errors.Is(err, services.ErrWrongCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"errorMessage": "Wrong credentials!",
			})
		}
		// Anything else is an infrastructure failure, not a rejection
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// HandleLogout is stateless: the client discards its token; there is no
// server-side revocation list.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// HandleSession echoes the session claims of the authenticated caller.
func (h *AuthHandler) HandleSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id": c.Locals("user_id"),
		"name":    c.Locals("name"),
		"email":   c.Locals("email"),
	})
}
