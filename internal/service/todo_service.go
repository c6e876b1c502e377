package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/averyhsu/planner-backend/internal/domain"
	"github.com/averyhsu/planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CreateTodoRequest holds the data needed to create a new todo.
type CreateTodoRequest struct {
	Item string `json:"item" validate:"required"`
}

// UpdateTodoRequest holds the data for updating an existing todo. The pointer
// distinguishes an omitted field from one set to its zero value.
type UpdateTodoRequest struct {
	Item *string `json:"item"`
}

// TodoResponse is the standard representation of a Todo returned by the service.
type TodoResponse struct {
	ID        uint   `json:"id"`
	Item      string `json:"item"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TodoService defines the operations for managing todos.
type TodoService interface {
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error)
	GetTodoByID(ctx context.Context, id uint) (*TodoResponse, error)
	GetAllTodos(ctx context.Context) ([]TodoResponse, error)
	UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) (*TodoResponse, error)
	DeleteTodo(ctx context.Context, id uint) error
	DeleteAllTodos(ctx context.Context) (int64, error)
}

type todoService struct {
	repo     repository.TodoRepository
	validate *validator.Validate
}

// NewTodoService creates a new instance of the todo service.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func todoToResponse(todo *domain.Todo) *TodoResponse {
	return &TodoResponse{
		ID:        todo.ID,
		Item:      todo.Item,
		CreatedAt: todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt: todo.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *todoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	newTodo := &domain.Todo{Item: req.Item}
	if err := s.repo.Create(newTodo); err != nil {
		log.Printf("Error creating todo in repository: %v", err)
		return nil, errors.New("failed to create todo item")
	}

	return todoToResponse(newTodo), nil
}

func (s *todoService) GetTodoByID(ctx context.Context, id uint) (*TodoResponse, error) {
	todo, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Error fetching todo %d from repository: %v", id, err)
		return nil, errors.New("failed to retrieve todo item")
	}

	return todoToResponse(todo), nil
}

func (s *todoService) GetAllTodos(ctx context.Context) ([]TodoResponse, error) {
	todos, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Error fetching all todos from repository: %v", err)
		return nil, errors.New("failed to retrieve todo items")
	}

	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, *todoToResponse(&todos[i]))
	}

	return responses, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) (*TodoResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Error fetching todo %d for update: %v", id, err)
		return nil, errors.New("failed to retrieve todo item for update")
	}

	updated := false
	if req.Item != nil && *req.Item != "" && *req.Item != existing.Item {
		existing.Item = *req.Item
		updated = true
	}

	// Nothing changed: return the current state without another write.
	if !updated {
		return todoToResponse(existing), nil
	}

	if err := s.repo.Update(existing); err != nil {
		log.Printf("Error updating todo %d in repository: %v", id, err)
		return nil, errors.New("failed to update todo item")
	}

	return todoToResponse(existing), nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		log.Printf("Error checking existence of todo %d before delete: %v", id, err)
		return errors.New("failed to check todo item before deletion")
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("Error deleting todo %d from repository: %v", id, err)
		return errors.New("failed to delete todo item")
	}

	return nil
}

func (s *todoService) DeleteAllTodos(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll()
	if err != nil {
		log.Printf("Error deleting all todos from repository: %v", err)
		return 0, errors.New("failed to delete todo items")
	}
	return affected, nil
}
