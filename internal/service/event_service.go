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

// CreateEventRequest holds the data needed to create a new event. The creator
// comes from the authenticated caller, never from the payload.
type CreateEventRequest struct {
	Title       string   `json:"title" validate:"required"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location"`
}

// UpdateEventRequest holds the data for a partial event update.
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Location    *string   `json:"location"`
}

// EventResponse is the standard representation of an Event returned by the service.
type EventResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location"`
	CreatorID   uint     `json:"creator_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// EventService defines the operations for managing planner events.
type EventService interface {
	CreateEvent(ctx context.Context, creatorID uint, req CreateEventRequest) (*EventResponse, error)
	GetEventByID(ctx context.Context, id uint) (*EventResponse, error)
	GetAllEvents(ctx context.Context) ([]EventResponse, error)
	GetEventsByCreator(ctx context.Context, creatorID uint) ([]EventResponse, error)
	UpdateEvent(ctx context.Context, id, callerID uint, req UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(ctx context.Context, id, callerID uint) error
	DeleteAllEvents(ctx context.Context) (int64, error)
}

type eventService struct {
	repo     repository.EventRepository
	validate *validator.Validate
}

// NewEventService creates a new instance of the event service.
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func eventToResponse(event *domain.Event) *EventResponse {
	tags := event.Tags
	if tags == nil {
		tags = []string{}
	}
	return &EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Image:       event.Image,
		Description: event.Description,
		Tags:        tags,
		Location:    event.Location,
		CreatorID:   event.CreatorID,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, creatorID uint, req CreateEventRequest) (*EventResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	newEvent := &domain.Event{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Tags:        req.Tags,
		Location:    req.Location,
		CreatorID:   creatorID,
	}
	if err := s.repo.Create(newEvent); err != nil {
		log.Printf("Error creating event in repository: %v", err)
		return nil, errors.New("failed to create event")
	}

	return eventToResponse(newEvent), nil
}

func (s *eventService) GetEventByID(ctx context.Context, id uint) (*EventResponse, error) {
	event, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		log.Printf("Error fetching event %d from repository: %v", id, err)
		return nil, errors.New("failed to retrieve event")
	}

	return eventToResponse(event), nil
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]EventResponse, error) {
	events, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Error fetching all events from repository: %v", err)
		return nil, errors.New("failed to retrieve events")
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *eventToResponse(&events[i]))
	}

	return responses, nil
}

func (s *eventService) GetEventsByCreator(ctx context.Context, creatorID uint) ([]EventResponse, error) {
	events, err := s.repo.FindByCreator(creatorID)
	if err != nil {
		log.Printf("Error fetching events for creator %d: %v", creatorID, err)
		return nil, errors.New("failed to retrieve events")
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *eventToResponse(&events[i]))
	}

	return responses, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id, callerID uint, req UpdateEventRequest) (*EventResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		log.Printf("Error fetching event %d for update: %v", id, err)
		return nil, errors.New("failed to retrieve event for update")
	}

	if existing.CreatorID != callerID {
		return nil, ErrNotEventCreator
	}

	updated := false
	if req.Title != nil && *req.Title != "" && *req.Title != existing.Title {
		existing.Title = *req.Title
		updated = true
	}
	if req.Image != nil && *req.Image != existing.Image {
		existing.Image = *req.Image
		updated = true
	}
	if req.Description != nil && *req.Description != existing.Description {
		existing.Description = *req.Description
		updated = true
	}
	if req.Tags != nil {
		existing.Tags = *req.Tags
		updated = true
	}
	if req.Location != nil && *req.Location != existing.Location {
		existing.Location = *req.Location
		updated = true
	}

	if !updated {
		return eventToResponse(existing), nil
	}

	if err := s.repo.Update(existing); err != nil {
		log.Printf("Error updating event %d in repository: %v", id, err)
		return nil, errors.New("failed to update event")
	}

	return eventToResponse(existing), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id, callerID uint) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		log.Printf("Error checking existence of event %d before delete: %v", id, err)
		return errors.New("failed to check event before deletion")
	}

	if existing.CreatorID != callerID {
		return ErrNotEventCreator
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("Error deleting event %d from repository: %v", id, err)
		return errors.New("failed to delete event")
	}

	return nil
}

func (s *eventService) DeleteAllEvents(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeleteAll()
	if err != nil {
		log.Printf("Error deleting all events from repository: %v", err)
		return 0, errors.New("failed to delete events")
	}
	return affected, nil
}
