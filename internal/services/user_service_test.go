package services_test

import (
	"testing"

	"pizzeria/internal/models"
	"pizzeria/internal/repositories"
	"pizzeria/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestUser(email string) *models.User {
	return &models.User{
		Email:    email,
		Password: "secret",
		Name:     "A",
		Surname:  "B",
		Address: models.Address{
			Country:     "Hungary",
			State:       "Pest",
			City:        "Budapest",
			PostalCode:  "1011",
			Street:      "Fo utca",
			HouseNumber: "1",
		},
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, nil)

	created, err := service.Register(newTestUser("a@b.com"))
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	stored, err := repo.GetByEmail("a@b.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, nil)

	first, err := service.Register(newTestUser("dup@b.com"))
	assert.NoError(t, err)

	_, err = service.Register(newTestUser("dup@b.com"))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// The first record is unaffected
	stored, err := repo.GetByEmail("dup@b.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestUserService_UpdateProfile_KeepsPasswordHash(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, nil)

	created, err := service.Register(newTestUser("old@b.com"))
	assert.NoError(t, err)
	hashBefore := created.Password

	created.Email = "new@b.com"
	created.Name = "C"
	_, err = service.UpdateProfile(created)
	assert.NoError(t, err)

	stored, err := repo.GetByEmail("new@b.com")
	assert.NoError(t, err)
	assert.Equal(t, "C", stored.Name)
	// An unrelated update must not re-hash the already-hashed value
	assert.Equal(t, hashBefore, stored.Password)
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, nil)

	created, err := service.Register(newTestUser("pw@b.com"))
	assert.NoError(t, err)

	err = service.ChangePassword(created.ID, "newsecret")
	assert.NoError(t, err)

	stored, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, nil)

	created, err := service.Register(newTestUser("gone@b.com"))
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteUser(created.ID))

	_, err = service.GetUserByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
