package service

import (
	"context"
	"testing"
	"time"

	"github.com/averyhsu/planner-backend/internal/auth"
	"github.com/averyhsu/planner-backend/internal/domain"
	"github.com/averyhsu/planner-backend/internal/repository"

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

func newTodoService(t *testing.T) TodoService {
	t.Helper()
	return NewTodoService(repository.NewGormTodoRepository(newTestDB(t)))
}

func newEventService(t *testing.T) EventService {
	t.Helper()
	return NewEventService(repository.NewGormEventRepository(newTestDB(t)))
}

func newUserService(t *testing.T) UserService {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(repository.NewGormUserRepository(newTestDB(t)), tokens)
}

func TestCreateTodoValidation(t *testing.T) {
	svc := newTodoService(t)

	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{Item: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTodoLifecycle(t *testing.T) {
	svc := newTodoService(t)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Item: "Example schema!"})
	require.NoError(t, err)
	assert.Equal(t, "Example schema!", created.Item)
	assert.NotZero(t, created.ID)

	got, err := svc.GetTodoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Item, got.Item)

	newItem := "Read the next chapter"
	updated, err := svc.UpdateTodo(ctx, created.ID, UpdateTodoRequest{Item: &newItem})
	require.NoError(t, err)
	assert.Equal(t, newItem, updated.Item)

	// An empty update returns the current state unchanged.
	same, err := svc.UpdateTodo(ctx, created.ID, UpdateTodoRequest{})
	require.NoError(t, err)
	assert.Equal(t, newItem, same.Item)

	require.NoError(t, svc.DeleteTodo(ctx, created.ID))
	_, err = svc.GetTodoByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoNotFound(t *testing.T) {
	svc := newTodoService(t)
	ctx := context.Background()

	_, err := svc.GetTodoByID(ctx, 99)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	item := "x"
	_, err = svc.UpdateTodo(ctx, 99, UpdateTodoRequest{Item: &item})
	assert.ErrorIs(t, err, ErrTodoNotFound)

	assert.ErrorIs(t, svc.DeleteTodo(ctx, 99), ErrTodoNotFound)
}

func TestDeleteAllTodos(t *testing.T) {
	svc := newTodoService(t)
	ctx := context.Background()

	for _, item := range []string{"one", "two"} {
		_, err := svc.CreateTodo(ctx, CreateTodoRequest{Item: item})
		require.NoError(t, err)
	}

	affected, err := svc.DeleteAllTodos(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	all, err := svc.GetAllTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEventLifecycle(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()
	const creator = uint(1)

	created, err := svc.CreateEvent(ctx, creator, CreateEventRequest{
		Title:       "FastAPI Book Launch",
		Description: "We will be discussing the book",
		Tags:        []string{"python", "fastapi"},
		Location:    "Google Meet",
	})
	require.NoError(t, err)
	assert.Equal(t, creator, created.CreatorID)
	assert.Equal(t, []string{"python", "fastapi"}, created.Tags)

	loc := "Hybrid"
	updated, err := svc.UpdateEvent(ctx, created.ID, creator, UpdateEventRequest{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Hybrid", updated.Location)
	assert.Equal(t, "FastAPI Book Launch", updated.Title)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID, creator))
	_, err = svc.GetEventByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventCreatorOnlyMutations(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, 1, CreateEventRequest{Title: "Private planning"})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.UpdateEvent(ctx, created.ID, 2, UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotEventCreator)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, created.ID, 2), ErrNotEventCreator)

	// Anyone may read.
	got, err := svc.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private planning", got.Title)
}

func TestEventValidation(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, 1, CreateEventRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateEvent(ctx, 1, CreateEventRequest{Title: "ok", Image: "not a url"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetEventsByCreator(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, 1, CreateEventRequest{Title: "mine"})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, 2, CreateEventRequest{Title: "theirs"})
	require.NoError(t, err)

	mine, err := svc.GetEventsByCreator(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)

	all, err := svc.GetAllEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, SignUpRequest{Email: "FastAPI@Packt.com", Password: "strong!!!pass"})
	require.NoError(t, err)
	assert.Equal(t, "fastapi@packt.com", user.Email)

	_, err = svc.SignUp(ctx, SignUpRequest{Email: "fastapi@packt.com", Password: "strong!!!pass"})
	assert.ErrorIs(t, err, ErrUserExists)

	token, err := svc.SignIn(ctx, SignInRequest{Email: "fastapi@packt.com", Password: "strong!!!pass"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
}

func TestSignInFailures(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, SignInRequest{Email: "nobody@packt.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.SignUp(ctx, SignUpRequest{Email: "user@packt.com", Password: "strong!!!pass"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, SignInRequest{Email: "user@packt.com", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpValidation(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpRequest{Email: "not-an-email", Password: "strong!!!pass"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SignUp(ctx, SignUpRequest{Email: "user@packt.com", Password: "short"})
	assert.ErrorIs(t, err, ErrValidation)
}
