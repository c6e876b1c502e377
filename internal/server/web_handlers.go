package server

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/averyhsu/planner-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// Each page template extends base.html by filling its "title" and "content"
// blocks, so every page is parsed together with the base layout.
var pageTemplates = func() map[string]*template.Template {
	pages := map[string]*template.Template{}
	for _, name := range []string{"home", "todo", "notfound"} {
		pages[name] = template.Must(template.ParseFS(
			templateFS, "templates/base.html", "templates/"+name+".html",
		))
	}
	return pages
}()

func (s *Server) renderPage(w http.ResponseWriter, code int, name string, data interface{}) {
	tmpl, ok := pageTemplates[name]
	if !ok {
		log.Printf("Unknown page template %q", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering page %q: %v", name, err)
	}
}

func (s *Server) todoPageHandler(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todoService.GetAllTodos(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve todos", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, http.StatusOK, "home", map[string]interface{}{
		"Todos": todos,
	})
}

func (s *Server) todoFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	item := strings.TrimSpace(r.PostFormValue("item"))
	_, err := s.todoService.CreateTodo(r.Context(), service.CreateTodoRequest{Item: item})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, "Todo item must not be empty", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create todo", http.StatusInternalServerError)
		return
	}

	// Post/Redirect/Get so a refresh does not resubmit the form.
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

func (s *Server) todoDetailPageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		s.renderPage(w, http.StatusNotFound, "notfound", map[string]interface{}{
			"Message": "Invalid todo ID provided",
		})
		return
	}

	todo, err := s.todoService.GetTodoByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			s.renderPage(w, http.StatusNotFound, "notfound", map[string]interface{}{
				"Message": "Todo with supplied ID does not exist",
			})
			return
		}
		http.Error(w, "Failed to retrieve todo", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, http.StatusOK, "todo", map[string]interface{}{
		"Todo": todo,
	})
}
