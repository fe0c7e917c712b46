package repositories

import (
	"fmt"
	"sync"
	"time"

	"pizzeria/internal/models"

	"github.com/google/uuid"
)

// MockPizzaRepository is an in-memory implementation of PizzaRepository. It
// enforces the same name uniqueness as the database index.
type MockPizzaRepository struct {
	pizzas map[string]models.Pizza
	mu     sync.RWMutex
}

// NewMockPizzaRepository creates a new instance of MockPizzaRepository.
func NewMockPizzaRepository() *MockPizzaRepository {
	return &MockPizzaRepository{
		pizzas: make(map[string]models.Pizza),
	}
}

// GetAll returns all pizzas.
func (r *MockPizzaRepository) GetAll() ([]models.Pizza, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pizzaList := make([]models.Pizza, 0, len(r.pizzas))
	for _, p := range r.pizzas {
		pizzaList = append(pizzaList, p)
	}
	return pizzaList, nil
}

// GetByID returns a pizza by its ID.
func (r *MockPizzaRepository) GetByID(id string) (*models.Pizza, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pizza, ok := r.pizzas[id]
	if !ok {
		return nil, fmt.Errorf("pizza with ID %s: %w", id, ErrNotFound)
	}
	return &pizza, nil
}

// Create adds a new pizza.
func (r *MockPizzaRepository) Create(pizza *models.Pizza) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.pizzas {
		if existing.Name == pizza.Name {
			return fmt.Errorf("pizza named %q: %w", pizza.Name, ErrDuplicate)
		}
	}
	if pizza.ID == "" {
		pizza.ID = uuid.New().String()
	}
	pizza.CreatedAt = time.Now()
	pizza.UpdatedAt = time.Now()
	r.pizzas[pizza.ID] = *pizza
	return nil
}

// Update modifies an existing pizza.
func (r *MockPizzaRepository) Update(pizza *models.Pizza) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pizzas[pizza.ID]
	if !ok {
		return fmt.Errorf("pizza with ID %s: %w", pizza.ID, ErrNotFound)
	}
	for id, existing := range r.pizzas {
		if id != pizza.ID && existing.Name == pizza.Name {
			return fmt.Errorf("pizza named %q: %w", pizza.Name, ErrDuplicate)
		}
	}
	pizza.UpdatedAt = time.Now()
	r.pizzas[pizza.ID] = *pizza
	return nil
}

// Delete removes a pizza by its ID.
func (r *MockPizzaRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pizzas[id]
	if !ok {
		return fmt.Errorf("pizza with ID %s: %w", id, ErrNotFound)
	}
	delete(r.pizzas, id)
	return nil
}
