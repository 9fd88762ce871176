package screens

import (
	"context"

	"github.com/sbilibin2017/gw-user-directory/internal/i18n"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
)

// EditScreen edits the name and email of one user.
type EditScreen struct {
	State
	ID       string
	Original *models.User
	Form     Form
	Redirect *Redirect

	deps Deps
}

// NewEditScreen creates an EditScreen for id.
func NewEditScreen(deps Deps, id string) *EditScreen {
	return &EditScreen{ID: id, deps: deps}
}

// Mount loads the user and pre-fills the form with its values.
func (s *EditScreen) Mount(ctx context.Context) {
	s.Status = StatusLoading
	s.Original, s.State = fetchUser(ctx, s.deps.API, s.ID)
	if s.Original != nil {
		s.Form = Form{Name: s.Original.Name, Email: s.Original.Email}
	}
}

// SetForm replaces the form input.
func (s *EditScreen) SetForm(name, email string) {
	s.Form = Form{Name: name, Email: email}
}

// NameChanged reports whether the name input differs from the loaded user.
func (s *EditScreen) NameChanged() bool {
	return s.Original != nil && s.Form.Name != s.Original.Name
}

// EmailChanged reports whether the email input differs from the loaded user.
func (s *EditScreen) EmailChanged() bool {
	return s.Original != nil && s.Form.Email != s.Original.Email
}

// CanSubmit reports whether the form may be submitted.
func (s *EditScreen) CanSubmit() bool {
	if s.Original == nil || s.Status == StatusLoading {
		return false
	}
	return s.NameChanged() || s.EmailChanged()
}

// Submit sends Update and schedules a move to the detail screen.
func (s *EditScreen) Submit(ctx context.Context) {
	if !s.CanSubmit() {
		return
	}
	if s.Form.Blank() {
		s.State = failure(i18n.MsgRequired)
		return
	}

	f := s.Form.trimmed()
	s.Status = StatusLoading
	users, err := s.deps.API.Update(ctx, s.ID, f.Name, f.Email)
	if err != nil {
		logger.Log.Errorw("update user", "id", s.ID, "error", err)
		s.State = failure(i18n.MsgUpdateFailed)
		return
	}

	if len(users) > 0 {
		u := users[0]
		s.Original = &u
	}
	s.State = success(i18n.MsgUpdated)
	s.Redirect = s.deps.redirect(UserPath(s.ID), SaveRedirectDelay)
}

// Unmount cancels a pending redirect.
func (s *EditScreen) Unmount() {
	s.Redirect.Cancel()
}
