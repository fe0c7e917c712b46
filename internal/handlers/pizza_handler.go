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

// PizzaHandler handles HTTP requests for the pizza catalog.
type PizzaHandler struct {
	service  *services.PizzaService
	validate *validator.Validate
}

// NewPizzaHandler creates a new PizzaHandler.
func NewPizzaHandler(service *services.PizzaService) *PizzaHandler {
	return &PizzaHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the pizza routes with the Fiber app. The id route
// is registered for all verbs so that unsupported methods get the resource's
// own 404 payload instead of the router default.
func (h *PizzaHandler) RegisterRoutes(router fiber.Router) {
	pizzaRoutes := router.Group("/pizza")
	pizzaRoutes.Get("/", h.HandleList)
	pizzaRoutes.Post("/", h.HandleCreate)
	pizzaRoutes.All("/:id", h.HandleByID)
}

// pizzaRequest is the whitelisted body for create and update.
type pizzaRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

// HandleList retrieves all pizzas.
func (h *PizzaHandler) HandleList(c *fiber.Ctx) error {
	pizzas, err := h.service.GetAllPizzas()
	if err != nil {
		log.Printf("Error getting all pizzas: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(pizzas)
}

// HandleCreate creates a new pizza.
func (h *PizzaHandler) HandleCreate(c *fiber.Ctx) error {
	var req pizzaRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing pizza create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	pizza := models.Pizza{Name: req.Name, Price: req.Price}
	created, err := h.service.CreatePizza(&pizza)
	if err != nil {
		log.Printf("Error creating pizza: %v", err)
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

// HandleByID resolves the pizza first and then dispatches on the HTTP verb.
// Exactly one response is written per request: a lookup failure reports 500
// and stops, a miss reports 404 and stops.
func (h *PizzaHandler) HandleByID(c *fiber.Ctx) error {
	pizza, err := h.service.GetPizzaByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"errorMessage": "Cannot find pizza!",
			})
		}
		log.Printf("Error looking up pizza %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	switch c.Method() {
	case fiber.MethodGet:
		return c.Status(fiber.StatusOK).JSON(pizza)
	case fiber.MethodPut:
		return h.handleUpdate(c, pizza)
	case fiber.MethodDelete:
		return h.handleDelete(c, pizza)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"errorMessage": "Not found!",
		})
	}
}

func (h *PizzaHandler) handleUpdate(c *fiber.Ctx, pizza *models.Pizza) error {
	var req pizzaRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing pizza update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}

	pizza.Name = req.Name
	pizza.Price = req.Price

	updated, err := h.service.UpdatePizza(pizza)
	if err != nil {
		log.Printf("Error updating pizza %s: %v", pizza.ID, err)
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

func (h *PizzaHandler) handleDelete(c *fiber.Ctx, pizza *models.Pizza) error {
	if err := h.service.DeletePizza(pizza.ID); err != nil {
		log.Printf("Error deleting pizza %s: %v", pizza.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errorMessage": err.Error(),
		})
	}
	// The deleted entity is echoed back to the caller.
	return c.Status(fiber.StatusOK).JSON(pizza)
}
