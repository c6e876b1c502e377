package repository

import (
	"github.com/averyhsu/planner-backend/internal/domain"

	"gorm.io/gorm"
)

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	Create(todo *domain.Todo) error
	FindByID(id uint) (*domain.Todo, error)
	GetAll() ([]domain.Todo, error)
	Update(todo *domain.Todo) error
	Delete(id uint) error
	DeleteAll() (int64, error)
}

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM todo repository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *domain.Todo) error {
	return r.db.Create(todo).Error
}

func (r *gormTodoRepository) FindByID(id uint) (*domain.Todo, error) {
	var todo domain.Todo
	result := r.db.First(&todo, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &todo, nil
}

func (r *gormTodoRepository) GetAll() ([]domain.Todo, error) {
	var todos []domain.Todo
	result := r.db.Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

func (r *gormTodoRepository) Update(todo *domain.Todo) error {
	return r.db.Save(todo).Error
}

// Delete performs a soft delete; gorm.Model keeps the row with DeletedAt set.
func (r *gormTodoRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Todo{}, id).Error
}

// DeleteAll removes every todo and reports how many rows were affected.
func (r *gormTodoRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&domain.Todo{})
	return result.RowsAffected, result.Error
}
