package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cadastro/internal/models"
	"cadastro/internal/repositories"
)

// The in-memory repository must honor the same contract as the GORM one:
// fresh never-reused ids, email uniqueness, absence as (nil, nil).
func TestMockUserRepository_Contract(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	first := newUser("ana@x.com")
	assert.NoError(t, repo.Create(first))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	assert.ErrorIs(t, repo.Create(newUser("ana@x.com")), repositories.ErrDuplicateEmail)

	second := newUser("bruno@x.com")
	assert.NoError(t, repo.Create(second))
	assert.Equal(t, uint(2), second.ID)

	users, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Less(t, users[0].ID, users[1].ID)

	missing, err := repo.GetByID(42)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	email := "ana@x.com"
	_, err = repo.Update(second.ID, models.UpdateUserInput{Email: &email})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	city := "Recife"
	updated, err := repo.Update(second.ID, models.UpdateUserInput{City: &city})
	assert.NoError(t, err)
	assert.Equal(t, "Recife", updated.City)
	assert.Equal(t, "bruno@x.com", updated.Email)

	assert.NoError(t, repo.Delete(first.ID))
	assert.ErrorIs(t, repo.Delete(first.ID), repositories.ErrNotFound)

	// Deleting never frees an id for reuse.
	third := newUser("clara@x.com")
	assert.NoError(t, repo.Create(third))
	assert.Equal(t, uint(3), third.ID)
}
