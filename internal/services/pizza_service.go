package services

import (
	"fmt"
	"log"

	"pizzeria/internal/models"
	"pizzeria/internal/repositories"
	"pizzeria/pkg/rabbitmq"
)

// PizzaService handles business logic related to the pizza catalog.
type PizzaService struct {
	repo     repositories.PizzaRepository
	mqClient *rabbitmq.Client
}

// NewPizzaService creates a new PizzaService. mqClient may be nil, in which
// case no events are published.
func NewPizzaService(repo repositories.PizzaRepository, mqClient *rabbitmq.Client) *PizzaService {
	return &PizzaService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllPizzas retrieves all catalog items.
func (s *PizzaService) GetAllPizzas() ([]models.Pizza, error) {
	return s.repo.GetAll()
}

// GetPizzaByID retrieves a single pizza by its ID.
func (s *PizzaService) GetPizzaByID(id string) (*models.Pizza, error) {
	return s.repo.GetByID(id)
}

// CreatePizza adds a new pizza to the catalog. Name uniqueness is enforced by
// the repository.
func (s *PizzaService) CreatePizza(pizza *models.Pizza) (*models.Pizza, error) {
	if err := s.repo.Create(pizza); err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishShopEvent("pizza.created", map[string]interface{}{
			"pizzaID": pizza.ID,
			"name":    pizza.Name,
			"price":   pizza.Price,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish pizza.created event for pizza %s: %v", pizza.ID, err)
		}
	}

	return pizza, nil
}

// UpdatePizza updates an existing pizza.
func (s *PizzaService) UpdatePizza(pizza *models.Pizza) (*models.Pizza, error) {
	if err := s.repo.Update(pizza); err != nil {
		return nil, fmt.Errorf("failed to update pizza %s: %w", pizza.ID, err)
	}
	return pizza, nil
}

// DeletePizza deletes a pizza by its ID.
func (s *PizzaService) DeletePizza(id string) error {
	return s.repo.Delete(id)
}
