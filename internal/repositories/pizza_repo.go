package repositories

import (
	"pizzeria/internal/models"
)

// PizzaRepository defines the interface for pizza catalog data access.
type PizzaRepository interface {
	GetAll() ([]models.Pizza, error)
	GetByID(id string) (*models.Pizza, error)
	Create(pizza *models.Pizza) error
	Update(pizza *models.Pizza) error
	Delete(id string) error
}
