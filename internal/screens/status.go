// Package screens holds the state machines behind the user pages.
package screens

import (
	"context"

	"github.com/sbilibin2017/gw-user-directory/internal/i18n"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
)

// Status is the lifecycle of the last action a screen performed.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the status of a screen plus the message to show for it.
// Message is empty when there is nothing to report.
type State struct {
	Status  Status
	Message i18n.Key
}

func success(msg i18n.Key) State { return State{Status: StatusSuccess, Message: msg} }
func failure(msg i18n.Key) State { return State{Status: StatusError, Message: msg} }

//go:generate mockgen -source=status.go -destination=mock_screens.go -package=screens

// UsersAPI is the users resource as seen by the screens.
type UsersAPI interface {
	List(ctx context.Context, id string) ([]models.User, error)
	Create(ctx context.Context, name, email string) ([]models.User, error)
	Update(ctx context.Context, id, name, email string) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt i18n.Key) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt i18n.Key) bool

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt i18n.Key) bool {
	return f(prompt)
}

func confirmed(c Confirmer) bool {
	return c == nil || c.Confirm(i18n.MsgConfirmDelete)
}

// Form is the name/email input pair.
type Form struct {
	Name  string
	Email string
}

// Blank reports whether either field is empty after trimming.
func (f Form) Blank() bool {
	return trim(f.Name) == "" || trim(f.Email) == ""
}

func (f Form) trimmed() Form {
	return Form{Name: trim(f.Name), Email: trim(f.Email)}
}
