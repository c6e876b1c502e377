package server

import (
	"net/http"

	"github.com/averyhsu/planner-backend/internal/service"
)

func (s *Server) signUpHandler(w http.ResponseWriter, r *http.Request) {
	var req service.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.userService.SignUp(r.Context(), req)
	if err != nil {
		serviceError(w, err, "Failed to create user")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    user,
	})
}

func (s *Server) signInHandler(w http.ResponseWriter, r *http.Request) {
	var req service.SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := s.userService.SignIn(r.Context(), req)
	if err != nil {
		serviceError(w, err, "Failed to sign in")
		return
	}

	respondWithJSON(w, http.StatusOK, token)
}
