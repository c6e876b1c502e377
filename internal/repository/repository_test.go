package repository

import (
	"testing"

	"github.com/averyhsu/planner-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Todo{}, &domain.Event{}, &domain.User{}))
	return db
}

func TestTodoRepositoryCRUD(t *testing.T) {
	repo := NewGormTodoRepository(newTestDB(t))

	todo := &domain.Todo{Item: "Read chapter 6"}
	require.NoError(t, repo.Create(todo))
	require.NotZero(t, todo.ID)

	found, err := repo.FindByID(todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read chapter 6", found.Item)

	found.Item = "Read chapter 7"
	require.NoError(t, repo.Update(found))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Read chapter 7", all[0].Item)

	require.NoError(t, repo.Delete(todo.ID))
	_, err = repo.FindByID(todo.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTodoRepositoryDeleteAll(t *testing.T) {
	repo := NewGormTodoRepository(newTestDB(t))

	for _, item := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Create(&domain.Todo{Item: item}))
	}

	affected, err := repo.DeleteAll()
	require.NoError(t, err)
	assert.EqualValues(t, 3, affected)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	// Deleting an empty table affects zero rows, not an error.
	affected, err = repo.DeleteAll()
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestEventRepositoryCRUD(t *testing.T) {
	repo := NewGormEventRepository(newTestDB(t))

	event := &domain.Event{
		Title:       "FastAPI Book Launch",
		Description: "We will be discussing the book",
		Tags:        []string{"python", "fastapi", "book"},
		Location:    "Google Meet",
		CreatorID:   1,
	}
	require.NoError(t, repo.Create(event))

	found, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "fastapi", "book"}, found.Tags)
	assert.Equal(t, "Google Meet", found.Location)

	found.Location = "Hybrid"
	require.NoError(t, repo.Update(found))

	byCreator, err := repo.FindByCreator(1)
	require.NoError(t, err)
	require.Len(t, byCreator, 1)
	assert.Equal(t, "Hybrid", byCreator[0].Location)

	byOther, err := repo.FindByCreator(2)
	require.NoError(t, err)
	assert.Empty(t, byOther)

	require.NoError(t, repo.Delete(event.ID))
	_, err = repo.FindByID(event.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))

	user := &domain.User{Email: "fastapi@packt.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))

	dup := &domain.User{Email: "fastapi@packt.com", PasswordHash: "other"}
	require.Error(t, repo.Create(dup))

	found, err := repo.FindByEmail("fastapi@packt.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail("absent@packt.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "fastapi@packt.com", byID.Email)
}
