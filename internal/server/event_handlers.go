package server

import (
	"net/http"

	"github.com/averyhsu/planner-backend/internal/auth"
	"github.com/averyhsu/planner-backend/internal/service"
)

func (s *Server) createEventHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	var req service.CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := s.eventService.CreateEvent(r.Context(), claims.UserID, req)
	if err != nil {
		serviceError(w, err, "Failed to create event")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Event created successfully",
		"event":   event,
	})
}

// myEventsHandler lists the events created by the signed-in user.
func (s *Server) myEventsHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	events, err := s.eventService.GetEventsByCreator(r.Context(), claims.UserID)
	if err != nil {
		serviceError(w, err, "Failed to retrieve events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}

func (s *Server) getAllEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := s.eventService.GetAllEvents(r.Context())
	if err != nil {
		serviceError(w, err, "Failed to retrieve events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}

func (s *Server) getEventByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	event, err := s.eventService.GetEventByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "Failed to retrieve event")
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}

func (s *Server) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := s.eventService.UpdateEvent(r.Context(), id, claims.UserID, req)
	if err != nil {
		serviceError(w, err, "Failed to update event")
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}

func (s *Server) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := s.eventService.DeleteEvent(r.Context(), id, claims.UserID); err != nil {
		serviceError(w, err, "Failed to delete event")
		return
	}

	respondWithMessage(w, http.StatusOK, "Event deleted successfully")
}

func (s *Server) deleteAllEventsHandler(w http.ResponseWriter, r *http.Request) {
	affected, err := s.eventService.DeleteAllEvents(r.Context())
	if err != nil {
		serviceError(w, err, "Failed to delete events")
		return
	}

	if affected == 0 {
		respondWithMessage(w, http.StatusOK, "No events found to delete")
		return
	}
	respondWithMessage(w, http.StatusOK, "All events deleted successfully")
}
