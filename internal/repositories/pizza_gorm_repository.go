package repositories

import (
	"errors"
	"fmt"

	"pizzeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPizzaRepository is a GORM implementation of PizzaRepository.
type GORMPizzaRepository struct {
	db *gorm.DB
}

// NewGORMPizzaRepository creates a new instance of GORMPizzaRepository.
func NewGORMPizzaRepository(db *gorm.DB) *GORMPizzaRepository {
	return &GORMPizzaRepository{
		db: db,
	}
}

// GetAll retrieves all pizzas from the database.
func (r *GORMPizzaRepository) GetAll() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := r.db.Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to get all pizzas: %w", err)
	}
	return pizzas, nil
}

// GetByID retrieves a single pizza by its ID from the database.
func (r *GORMPizzaRepository) GetByID(id string) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.First(&pizza, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pizza with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pizza by ID %s: %w", id, err)
	}
	return &pizza, nil
}

// Create creates a new pizza in the database. A unique-index violation on the
// name column surfaces as ErrDuplicate.
func (r *GORMPizzaRepository) Create(pizza *models.Pizza) error {
	if pizza.ID == "" {
		pizza.ID = uuid.New().String()
	}
	if err := r.db.Create(pizza).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("pizza named %q: %w", pizza.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create pizza: %w", err)
	}
	return nil
}

// Update updates an existing pizza in the database.
func (r *GORMPizzaRepository) Update(pizza *models.Pizza) error {
	res := r.db.Save(pizza) // Save updates all fields, including zero values
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("pizza named %q: %w", pizza.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to update pizza: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save does not return ErrRecordNotFound when the row is
		// missing, so check RowsAffected.
		return fmt.Errorf("pizza with ID %s: %w", pizza.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a pizza by its ID from the database.
func (r *GORMPizzaRepository) Delete(id string) error {
	res := r.db.Delete(&models.Pizza{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete pizza: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pizza with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
