package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/averyhsu/planner-backend/internal/auth"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.helloHandler)
	r.Get("/health", s.healthHandler)

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", s.createTodoHandler)
		r.Get("/", s.getAllTodosHandler)
		r.Delete("/", s.deleteAllTodosHandler)
		r.Get("/{id}", s.getTodoByIDHandler)
		r.Put("/{id}", s.updateTodoHandler)
		r.Delete("/{id}", s.deleteTodoHandler)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.getAllEventsHandler)
		r.Get("/{id}", s.getEventByIDHandler)

		// Mutations require a signed-in user.
		r.Group(func(r chi.Router) {
			r.Use(auth.Require(s.tokens))
			r.Post("/", s.createEventHandler)
			r.Put("/{id}", s.updateEventHandler)
			r.Delete("/{id}", s.deleteEventHandler)
			r.Delete("/", s.deleteAllEventsHandler)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", s.signUpHandler)
		r.Post("/signin", s.signInHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require(s.tokens))
			r.Get("/me/events", s.myEventsHandler)
		})
	})

	r.Route("/app", func(r chi.Router) {
		r.Get("/", s.todoPageHandler)
		r.Post("/", s.todoFormHandler)
		r.Get("/{id}", s.todoDetailPageHandler)
	})

	return r
}

func (s *Server) helloHandler(w http.ResponseWriter, r *http.Request) {
	respondWithMessage(w, http.StatusOK, "Hello World from the Planner Backend!")
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	healthStats := s.db.Health()
	if status, ok := healthStats["status"]; ok && status == "down" {
		respondWithJSON(w, http.StatusServiceUnavailable, healthStats)
		return
	}
	respondWithJSON(w, http.StatusOK, healthStats)
}
