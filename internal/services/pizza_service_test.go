package services_test

import (
	"fmt"
	"testing"

	"pizzeria/internal/models"
	"pizzeria/internal/repositories"
	"pizzeria/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPizzaRepository is a mock implementation of repositories.PizzaRepository
type MockPizzaRepository struct {
	mock.Mock
}

func (m *MockPizzaRepository) GetAll() ([]models.Pizza, error) {
	args := m.Called()
	return args.Get(0).([]models.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) GetByID(id string) (*models.Pizza, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) Create(pizza *models.Pizza) error {
	args := m.Called(pizza)
	return args.Error(0)
}

func (m *MockPizzaRepository) Update(pizza *models.Pizza) error {
	args := m.Called(pizza)
	return args.Error(0)
}

func (m *MockPizzaRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestPizzaService_GetAllPizzas(t *testing.T) {
	mockRepo := new(MockPizzaRepository)
	service := services.NewPizzaService(mockRepo, nil)

	expectedPizzas := []models.Pizza{
		{ID: "1", Name: "Margherita", Price: 8.5},
		{ID: "2", Name: "Diavola", Price: 10.0},
	}

	mockRepo.On("GetAll").Return(expectedPizzas, nil).Once()

	pizzas, err := service.GetAllPizzas()

	assert.NoError(t, err)
	assert.Len(t, pizzas, 2)
	assert.Equal(t, expectedPizzas, pizzas)
	mockRepo.AssertExpectations(t)
}

func TestPizzaService_GetPizzaByID(t *testing.T) {
	mockRepo := new(MockPizzaRepository)
	service := services.NewPizzaService(mockRepo, nil)

	expectedPizza := &models.Pizza{ID: "1", Name: "Margherita", Price: 8.5}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedPizza, nil).Once()
	pizza, err := service.GetPizzaByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedPizza, pizza)
	mockRepo.AssertExpectations(t)

	// Test pizza not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("pizza with ID 99: %w", repositories.ErrNotFound)).Once()
	pizza, err = service.GetPizzaByID("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, pizza)
	mockRepo.AssertExpectations(t)
}

func TestPizzaService_CreatePizza(t *testing.T) {
	mockRepo := new(MockPizzaRepository)
	service := services.NewPizzaService(mockRepo, nil)

	newPizza := &models.Pizza{Name: "Quattro Stagioni", Price: 11.0}

	// Test successful creation
	mockRepo.On("Create", newPizza).Return(nil).Once()
	created, err := service.CreatePizza(newPizza)
	assert.NoError(t, err)
	assert.Equal(t, newPizza, created)
	mockRepo.AssertExpectations(t)

	// Test duplicate name
	mockRepo.On("Create", newPizza).Return(fmt.Errorf("pizza named %q: %w", newPizza.Name, repositories.ErrDuplicate)).Once()
	_, err = service.CreatePizza(newPizza)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	mockRepo.AssertExpectations(t)
}

func TestPizzaService_UpdatePizza(t *testing.T) {
	mockRepo := new(MockPizzaRepository)
	service := services.NewPizzaService(mockRepo, nil)

	updatedPizza := &models.Pizza{ID: "1", Name: "Margherita Extra", Price: 9.5}

	// Test successful update
	mockRepo.On("Update", updatedPizza).Return(nil).Once()
	_, err := service.UpdatePizza(updatedPizza)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update of a missing pizza
	missing := &models.Pizza{ID: "99", Name: "Ghost", Price: 1.0}
	mockRepo.On("Update", missing).Return(fmt.Errorf("pizza with ID 99: %w", repositories.ErrNotFound)).Once()
	_, err = service.UpdatePizza(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestPizzaService_InMemoryRepositoryLifecycle(t *testing.T) {
	repo := repositories.NewMockPizzaRepository()
	service := services.NewPizzaService(repo, nil)

	created, err := service.CreatePizza(&models.Pizza{Name: "Capricciosa", Price: 10.5})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// Name uniqueness holds in the in-memory implementation too
	_, err = service.CreatePizza(&models.Pizza{Name: "Capricciosa", Price: 12.0})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	fetched, err := service.GetPizzaByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Capricciosa", fetched.Name)
	assert.Equal(t, 10.5, fetched.Price)

	// Renaming onto an existing name is rejected on update as well
	other, err := service.CreatePizza(&models.Pizza{Name: "Calzone", Price: 9.0})
	assert.NoError(t, err)
	other.Name = "Capricciosa"
	_, err = service.UpdatePizza(other)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	assert.NoError(t, service.DeletePizza(created.ID))

	_, err = service.GetPizzaByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = service.UpdatePizza(created)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, service.DeletePizza(created.ID), repositories.ErrNotFound)
}

func TestPizzaService_DeletePizza(t *testing.T) {
	mockRepo := new(MockPizzaRepository)
	service := services.NewPizzaService(mockRepo, nil)

	// Test successful deletion
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeletePizza("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion of a missing pizza
	mockRepo.On("Delete", "99").Return(fmt.Errorf("pizza with ID 99: %w", repositories.ErrNotFound)).Once()
	err = service.DeletePizza("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
