package screens

import (
	"context"

	"github.com/sbilibin2017/gw-user-directory/internal/i18n"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
)

// AddScreen is the standalone create form.
type AddScreen struct {
	State
	Form     Form
	Redirect *Redirect

	deps Deps
}

// NewAddScreen creates an AddScreen.
func NewAddScreen(deps Deps) *AddScreen {
	return &AddScreen{deps: deps}
}

// SetForm replaces the form input.
func (s *AddScreen) SetForm(name, email string) {
	s.Form = Form{Name: name, Email: email}
}

// Submit creates the user and schedules a return to the list.
func (s *AddScreen) Submit(ctx context.Context) {
	if s.Form.Blank() {
		s.State = failure(i18n.MsgRequired)
		return
	}

	f := s.Form.trimmed()
	s.Status = StatusLoading
	if _, err := s.deps.API.Create(ctx, f.Name, f.Email); err != nil {
		logger.Log.Errorw("create user", "error", err)
		s.State = failure(i18n.MsgAddFailed)
		return
	}

	s.Form = Form{}
	s.State = success(i18n.MsgAdded)
	s.Redirect = s.deps.redirect(HomePath, SaveRedirectDelay)
}

// Unmount cancels a pending redirect.
func (s *AddScreen) Unmount() {
	s.Redirect.Cancel()
}
