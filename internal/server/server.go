package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/averyhsu/planner-backend/internal/auth"
	"github.com/averyhsu/planner-backend/internal/config"
	"github.com/averyhsu/planner-backend/internal/database"
	"github.com/averyhsu/planner-backend/internal/service"
)

type Server struct {
	port         int
	todoService  service.TodoService
	eventService service.EventService
	userService  service.UserService
	tokens       *auth.TokenManager
	db           database.Service
}

// NewServer assembles the HTTP server from its dependencies.
func NewServer(
	cfg config.Config,
	todoService service.TodoService,
	eventService service.EventService,
	userService service.UserService,
	tokens *auth.TokenManager,
	dbService database.Service,
) *http.Server {
	appServer := &Server{
		port:         cfg.Port,
		todoService:  todoService,
		eventService: eventService,
		userService:  userService,
		tokens:       tokens,
		db:           dbService,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", appServer.port),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
