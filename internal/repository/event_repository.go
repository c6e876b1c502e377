package repository

import (
	"github.com/averyhsu/planner-backend/internal/domain"

	"gorm.io/gorm"
)

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(event *domain.Event) error
	FindByID(id uint) (*domain.Event, error)
	GetAll() ([]domain.Event, error)
	FindByCreator(creatorID uint) ([]domain.Event, error)
	Update(event *domain.Event) error
	Delete(id uint) error
	DeleteAll() (int64, error)
}

type gormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository
func NewGormEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) Create(event *domain.Event) error {
	return r.db.Create(event).Error
}

func (r *gormEventRepository) FindByID(id uint) (*domain.Event, error) {
	var event domain.Event
	result := r.db.First(&event, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *gormEventRepository) GetAll() ([]domain.Event, error) {
	var events []domain.Event
	result := r.db.Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *gormEventRepository) FindByCreator(creatorID uint) ([]domain.Event, error) {
	var events []domain.Event
	result := r.db.Where("creator_id = ?", creatorID).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *gormEventRepository) Update(event *domain.Event) error {
	return r.db.Save(event).Error
}

func (r *gormEventRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Event{}, id).Error
}

func (r *gormEventRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&domain.Event{})
	return result.RowsAffected, result.Error
}
