package screens

import (
	"context"

	"github.com/sbilibin2017/gw-user-directory/internal/i18n"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
)

// ListScreen lists all users and adds new ones from an inline form.
type ListScreen struct {
	State
	Users []models.User
	Form  Form

	api     UsersAPI
	confirm Confirmer
}

// NewListScreen creates a ListScreen. A nil confirm approves every delete.
func NewListScreen(api UsersAPI, confirm Confirmer) *ListScreen {
	return &ListScreen{api: api, confirm: confirm, Users: []models.User{}}
}

// Mount loads the list.
func (s *ListScreen) Mount(ctx context.Context) {
	s.Refresh(ctx)
}

// Refresh re-issues List. On failure the previous rows are kept.
func (s *ListScreen) Refresh(ctx context.Context) {
	s.Status = StatusLoading
	users, err := s.api.List(ctx, "")
	if err != nil {
		logger.Log.Errorw("list users", "error", err)
		s.State = failure(i18n.MsgFetchFailed)
		return
	}
	s.Users = users
	s.State = success("")
}

// SetForm replaces the form input.
func (s *ListScreen) SetForm(name, email string) {
	s.Form = Form{Name: name, Email: email}
}

// Submit creates a user from the form and reloads the list once Create returns.
// Blank fields are rejected without a request.
func (s *ListScreen) Submit(ctx context.Context) {
	if s.Form.Blank() {
		s.State = failure(i18n.MsgRequired)
		return
	}

	f := s.Form.trimmed()
	s.Status = StatusLoading
	if _, err := s.api.Create(ctx, f.Name, f.Email); err != nil {
		logger.Log.Errorw("create user", "error", err)
		s.State = failure(i18n.MsgAddFailed)
		return
	}

	s.Form = Form{}
	s.Refresh(ctx)
	if s.Status == StatusSuccess {
		s.Message = i18n.MsgAdded
	}
}

// Delete removes the user with id after confirmation and reloads the list.
func (s *ListScreen) Delete(ctx context.Context, id string) {
	if !confirmed(s.confirm) {
		return
	}

	s.Status = StatusLoading
	if err := s.api.Delete(ctx, id); err != nil {
		logger.Log.Errorw("delete user", "id", id, "error", err)
		s.State = failure(i18n.MsgDeleteFailed)
		return
	}

	s.Refresh(ctx)
	if s.Status == StatusSuccess {
		s.Message = i18n.MsgDeleted
	}
}
