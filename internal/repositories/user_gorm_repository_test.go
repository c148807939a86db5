package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cadastro/internal/models"
	"cadastro/internal/repositories"
)

var dbCounter int64

// setupRepo opens a fresh in-memory SQLite database per test. The shared
// cache keeps the database alive across the pool's connections.
func setupRepo(t *testing.T) *repositories.GORMUserRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}))
	return repositories.NewGORMUserRepository(db)
}

func newUser(email string) *models.User {
	return &models.User{
		Name:   "Ana",
		Email:  email,
		Phone:  "11999999999",
		City:   "São Paulo",
		Status: models.StatusActive,
	}
}

func TestGORMUserRepository_Create(t *testing.T) {
	repo := setupRepo(t)

	user := newUser("ana@x.com")
	err := repo.Create(user)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.Nil(t, user.LastLogin)
}

func TestGORMUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := setupRepo(t)

	assert.NoError(t, repo.Create(newUser("ana@x.com")))

	err := repo.Create(newUser("ana@x.com"))
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	// Exactly one row survived.
	users, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGORMUserRepository_GetAll_OrderedByID(t *testing.T) {
	repo := setupRepo(t)

	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		assert.NoError(t, repo.Create(newUser(email)))
	}

	users, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, users, 3)
	for i := 1; i < len(users); i++ {
		assert.Less(t, users[i-1].ID, users[i].ID)
	}
}

func TestGORMUserRepository_GetByID_AbsenceIsNotAnError(t *testing.T) {
	repo := setupRepo(t)

	user, err := repo.GetByID(42)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestGORMUserRepository_Update_Partial(t *testing.T) {
	repo := setupRepo(t)

	user := newUser("ana@x.com")
	assert.NoError(t, repo.Create(user))

	city := "Salvador"
	updated, err := repo.Update(user.ID, models.UpdateUserInput{City: &city})
	assert.NoError(t, err)
	assert.Equal(t, "Salvador", updated.City)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "ana@x.com", updated.Email)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)
}

func TestGORMUserRepository_Update_EmptyPartialRefreshesUpdatedAt(t *testing.T) {
	repo := setupRepo(t)

	user := newUser("ana@x.com")
	assert.NoError(t, repo.Create(user))

	time.Sleep(10 * time.Millisecond)
	updated, err := repo.Update(user.ID, models.UpdateUserInput{})
	assert.NoError(t, err)
	assert.Equal(t, user.Name, updated.Name)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(user.UpdatedAt))
}

func TestGORMUserRepository_Update_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Update(42, models.UpdateUserInput{})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_Update_DuplicateEmailLeavesRowUnchanged(t *testing.T) {
	repo := setupRepo(t)

	first := newUser("ana@x.com")
	assert.NoError(t, repo.Create(first))
	second := newUser("bruno@x.com")
	second.Name = "Bruno"
	assert.NoError(t, repo.Create(second))

	email := "ana@x.com"
	_, err := repo.Update(second.ID, models.UpdateUserInput{Email: &email})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	current, err := repo.GetByID(second.ID)
	assert.NoError(t, err)
	assert.Equal(t, "bruno@x.com", current.Email)
}

func TestGORMUserRepository_Delete(t *testing.T) {
	repo := setupRepo(t)

	user := newUser("ana@x.com")
	assert.NoError(t, repo.Create(user))

	assert.NoError(t, repo.Delete(user.ID))

	// Hard delete: the row is gone.
	current, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Nil(t, current)

	// Repeated delete of a missing id is always NotFound.
	assert.ErrorIs(t, repo.Delete(user.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(user.ID), repositories.ErrNotFound)
}
