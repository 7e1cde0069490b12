package nav

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Muhammad-true/mm-shop-admin/internal/session"
)

var (
	// ErrViewNotAllowed is returned by Activate for a view outside the
	// role's set; the controller state does not change.
	ErrViewNotAllowed = errors.New("nav: view not available for role")
	// ErrLoggedOut is returned when no session exists.
	ErrLoggedOut = errors.New("nav: logged out")
)

// LoadFunc loads one view's data on activation.
type LoadFunc func(ctx context.Context) error

// Controller drives the single active-view state machine. Exactly one
// view is active while a session exists; the zero value of active marks
// the logged-out state.
type Controller struct {
	sessions *session.Store
	now      func() time.Time

	mu     sync.Mutex
	active ViewID
	loads  map[ViewID]LoadFunc
}

func NewController(sessions *session.Store) *Controller {
	return &Controller{
		sessions: sessions,
		now:      time.Now,
		loads:    make(map[ViewID]LoadFunc),
	}
}

// WithClock overrides the clock (tests).
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

// Register wires a view's load function.
func (c *Controller) Register(v ViewID, load LoadFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loads[v] = load
}

// Start restores persisted state: with a valid non-expired session the
// initial view is the first one the role allows, otherwise logged out.
func (c *Controller) Start(ctx context.Context) error {
	sess := c.sessions.Restore(c.now())
	if !sess.Present() {
		return ErrLoggedOut
	}
	first, ok := FirstView(sess.Role)
	if !ok {
		c.sessions.Clear()
		return ErrLoggedOut
	}
	return c.Activate(ctx, first)
}

// Activate switches to view v: rejected without state change when the
// role does not allow v, otherwise the session is touched and the view's
// load runs. A load failure leaves the view active with its last-good
// data; the error is surfaced for display.
func (c *Controller) Activate(ctx context.Context, v ViewID) error {
	sess, ok := c.sessions.Current()
	if !ok {
		return ErrLoggedOut
	}
	if !Allowed(sess.Role, v) {
		return ErrViewNotAllowed
	}

	c.mu.Lock()
	c.active = v
	load := c.loads[v]
	c.mu.Unlock()

	c.sessions.Touch(c.now())

	if load == nil {
		return nil
	}
	return load(ctx)
}

// Active returns the current view, or false when logged out.
func (c *Controller) Active() (ViewID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == "" {
		return "", false
	}
	return c.active, true
}

// Ensure re-checks the active view against the current role, falling
// back to the role's first view when the active one is no longer
// permitted (e.g. the role changed server-side).
func (c *Controller) Ensure(ctx context.Context) error {
	sess, ok := c.sessions.Current()
	if !ok {
		c.mu.Lock()
		c.active = ""
		c.mu.Unlock()
		return ErrLoggedOut
	}

	c.mu.Lock()
	cur := c.active
	c.mu.Unlock()

	if cur != "" && Allowed(sess.Role, cur) {
		return nil
	}
	first, ok := FirstView(sess.Role)
	if !ok {
		return ErrViewNotAllowed
	}
	return c.Activate(ctx, first)
}

// Logout is the terminal transition: reachable from any state, clears
// the session store and the active view.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.active = ""
	c.mu.Unlock()
	c.sessions.Clear()
}

// HandleAuthFailure reacts to an upstream 401: session cleared, state
// machine back to logged out.
func (c *Controller) HandleAuthFailure() {
	c.Logout()
}
