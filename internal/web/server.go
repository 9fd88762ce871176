// Package web renders the user screens as server-side HTML pages.
package web

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/screens"
)

// Server serves the user screens.
type Server struct {
	api       screens.UsersAPI
	scheduler screens.Scheduler
}

// NewServer creates a Server that reaches the users resource through api.
func NewServer(api screens.UsersAPI, scheduler screens.Scheduler) *Server {
	if scheduler == nil {
		scheduler = screens.NewClockScheduler()
	}
	return &Server{api: api, scheduler: scheduler}
}

// Routes registers the page routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Get(screens.HomePath, s.list)
	r.Post(screens.HomePath, s.create)
	r.Get(screens.AddPath, s.addForm)
	r.Post(screens.AddPath, s.add)
	r.Get("/users/{id}", s.detail)
	r.Get("/users/{id}/edit", s.editForm)
	r.Post("/users/{id}/edit", s.edit)
	r.Get("/users/{id}/delete", s.confirmDelete)
	r.Post("/users/{id}/delete", s.delete)
}

// deps leaves Navigator unset: pages redirect through meta refresh.
func (s *Server) deps(confirm screens.Confirmer) screens.Deps {
	return screens.Deps{
		API:       s.api,
		Confirm:   confirm,
		Scheduler: s.scheduler,
	}
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	templ.Handler(c, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			logger.Log.Errorw("render page", "path", r.URL.Path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}
