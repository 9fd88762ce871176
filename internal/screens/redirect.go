package screens

import (
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-user-directory/internal/logger"
)

// Redirect delays after a successful action.
const (
	DeleteRedirectDelay = 2 * time.Second
	SaveRedirectDelay   = 3 * time.Second
)

// Screen paths.
const (
	HomePath = "/"
	AddPath  = "/users/add"
)

// UserPath returns the detail screen path for id.
func UserPath(id string) string {
	return "/users/" + id
}

// EditPath returns the edit screen path for id.
func EditPath(id string) string {
	return UserPath(id) + "/edit"
}

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewClockScheduler returns a Scheduler backed by time.AfterFunc.
func NewClockScheduler() Scheduler {
	return clockScheduler{}
}

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(to string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(to string)

// Navigate calls f(to).
func (f NavigatorFunc) Navigate(to string) {
	f(to)
}

// Redirect is a navigation scheduled to happen after a delay.
//
// The timer is only armed when a Navigator is supplied. Without one the
// Redirect just records the target and delay, which the web pages render as
// a meta refresh.
type Redirect struct {
	To    string
	After time.Duration

	mu        sync.Mutex
	timer     Timer
	fired     bool
	cancelled bool
}

func scheduleRedirect(s Scheduler, nav Navigator, to string, after time.Duration) *Redirect {
	r := &Redirect{To: to, After: after}
	if nav == nil {
		return r
	}
	if s == nil {
		s = NewClockScheduler()
	}

	// The callback may run before AfterFunc returns, so r.mu is not held here.
	t := s.AfterFunc(after, func() {
		r.mu.Lock()
		if r.cancelled {
			r.mu.Unlock()
			return
		}
		r.fired = true
		r.mu.Unlock()

		logger.Log.Debugw("redirect fired", "to", to)
		nav.Navigate(to)
	})

	r.mu.Lock()
	r.timer = t
	r.mu.Unlock()
	return r
}

// Seconds returns the delay in whole seconds.
func (r *Redirect) Seconds() int {
	return int(r.After / time.Second)
}

// Cancel stops the redirect. It returns false if the redirect already fired
// or was cancelled before.
func (r *Redirect) Cancel() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fired || r.cancelled {
		return false
	}
	r.cancelled = true
	if r.timer != nil {
		r.timer.Stop()
	}
	return true
}

// Pending reports whether the redirect is still waiting to fire.
func (r *Redirect) Pending() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.fired && !r.cancelled
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
