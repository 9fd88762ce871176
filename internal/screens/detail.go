package screens

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-user-directory/internal/i18n"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
)

// Deps are the collaborators shared by the single-user screens.
type Deps struct {
	API       UsersAPI
	Confirm   Confirmer
	Scheduler Scheduler
	Navigator Navigator
}

func (d Deps) redirect(to string, after time.Duration) *Redirect {
	return scheduleRedirect(d.Scheduler, d.Navigator, to, after)
}

// DetailScreen shows one user.
type DetailScreen struct {
	State
	ID       string
	User     *models.User
	Redirect *Redirect

	deps Deps
}

// NewDetailScreen creates a DetailScreen for id.
func NewDetailScreen(deps Deps, id string) *DetailScreen {
	return &DetailScreen{ID: id, deps: deps}
}

// Mount loads the user.
func (s *DetailScreen) Mount(ctx context.Context) {
	s.User, s.State = fetchUser(ctx, s.deps.API, s.ID)
}

// SetID switches the screen to another user and reloads when id changed.
func (s *DetailScreen) SetID(ctx context.Context, id string) {
	if id == s.ID {
		return
	}
	s.ID = id
	s.Mount(ctx)
}

// Delete removes the user after confirmation and schedules a return to the list.
func (s *DetailScreen) Delete(ctx context.Context) {
	if !confirmed(s.deps.Confirm) {
		return
	}

	s.Status = StatusLoading
	if err := s.deps.API.Delete(ctx, s.ID); err != nil {
		logger.Log.Errorw("delete user", "id", s.ID, "error", err)
		s.State = failure(i18n.MsgDeleteFailed)
		return
	}

	s.State = success(i18n.MsgDeleted)
	s.Redirect = s.deps.redirect(HomePath, DeleteRedirectDelay)
}

// Unmount cancels a pending redirect.
func (s *DetailScreen) Unmount() {
	s.Redirect.Cancel()
}

func fetchUser(ctx context.Context, api UsersAPI, id string) (*models.User, State) {
	users, err := api.List(ctx, id)
	if err != nil {
		logger.Log.Errorw("fetch user", "id", id, "error", err)
		return nil, failure(i18n.MsgFetchFailed)
	}
	if len(users) == 0 {
		return nil, failure(i18n.MsgUserNotFound)
	}
	u := users[0]
	return &u, success("")
}
