package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-user-directory/internal/i18n"
	"github.com/sbilibin2017/gw-user-directory/internal/screens"
	"github.com/sbilibin2017/gw-user-directory/internal/web/templates"
)

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	screen := screens.NewListScreen(s.api, nil)
	screen.Mount(r.Context())
	s.renderList(w, r, screen)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	screen := screens.NewListScreen(s.api, nil)
	screen.Mount(r.Context())
	screen.SetForm(r.PostFormValue("name"), r.PostFormValue("email"))
	screen.Submit(r.Context())
	s.renderList(w, r, screen)
}

func (s *Server) renderList(w http.ResponseWriter, r *http.Request, screen *screens.ListScreen) {
	p := templates.NewPage(r, i18n.TitleList)
	p.State = screen.State
	render(w, r, templates.ListPage(p, screen))
}

func (s *Server) addForm(w http.ResponseWriter, r *http.Request) {
	screen := screens.NewAddScreen(s.deps(nil))
	render(w, r, templates.AddPage(templates.NewPage(r, i18n.TitleAdd), screen))
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	screen := screens.NewAddScreen(s.deps(nil))
	defer screen.Unmount()

	screen.SetForm(r.PostFormValue("name"), r.PostFormValue("email"))
	screen.Submit(r.Context())

	p := templates.NewPage(r, i18n.TitleAdd)
	p.State = screen.State
	p.Redirect = screen.Redirect
	render(w, r, templates.AddPage(p, screen))
}

func (s *Server) detail(w http.ResponseWriter, r *http.Request) {
	screen := screens.NewDetailScreen(s.deps(nil), chi.URLParam(r, "id"))
	screen.Mount(r.Context())
	s.renderDetail(w, r, screen)
}

func (s *Server) renderDetail(w http.ResponseWriter, r *http.Request, screen *screens.DetailScreen) {
	p := templates.NewPage(r, i18n.TitleDetail)
	p.State = screen.State
	p.Redirect = screen.Redirect
	render(w, r, templates.DetailPage(p, screen))
}

func (s *Server) editForm(w http.ResponseWriter, r *http.Request) {
	screen := screens.NewEditScreen(s.deps(nil), chi.URLParam(r, "id"))
	screen.Mount(r.Context())
	s.renderEdit(w, r, screen)
}

func (s *Server) edit(w http.ResponseWriter, r *http.Request) {
	screen := screens.NewEditScreen(s.deps(nil), chi.URLParam(r, "id"))
	defer screen.Unmount()

	screen.Mount(r.Context())
	if screen.Original != nil {
		screen.SetForm(r.PostFormValue("name"), r.PostFormValue("email"))
		screen.Submit(r.Context())
	}
	s.renderEdit(w, r, screen)
}

func (s *Server) renderEdit(w http.ResponseWriter, r *http.Request, screen *screens.EditScreen) {
	p := templates.NewPage(r, i18n.TitleEdit)
	p.State = screen.State
	p.Redirect = screen.Redirect
	render(w, r, templates.EditPage(p, screen))
}

func (s *Server) confirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c := templates.Confirm{ID: id, From: templates.FromList, Back: screens.HomePath}
	if r.URL.Query().Get("from") == templates.FromDetail {
		c.From = templates.FromDetail
		c.Back = screens.UserPath(id)
	}
	render(w, r, templates.ConfirmPage(templates.NewPage(r, i18n.TitleConfirm), c))
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirm := screens.ConfirmFunc(func(i18n.Key) bool {
		return r.PostFormValue("confirm") == "yes"
	})

	if r.PostFormValue("from") == templates.FromDetail {
		screen := screens.NewDetailScreen(s.deps(confirm), id)
		defer screen.Unmount()

		screen.Mount(r.Context())
		screen.Delete(r.Context())
		s.renderDetail(w, r, screen)
		return
	}

	screen := screens.NewListScreen(s.api, confirm)
	screen.Mount(r.Context())
	screen.Delete(r.Context(), id)
	s.renderList(w, r, screen)
}
