package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/nav"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/settings"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type ConsoleHandler struct {
	nav      *nav.Controller
	sessions *session.Store
	settings *settings.Controller
}

func NewConsoleHandler(n *nav.Controller, s *session.Store, set *settings.Controller) *ConsoleHandler {
	return &ConsoleHandler{nav: n, sessions: s, settings: set}
}

// State is what the front-end asks for on every page load: navigation,
// header (cached profile until the fetch lands) and any pending toast.
func (h *ConsoleHandler) State(c *gin.Context) {
	out := gin.H{"loggedIn": false}

	if sess, ok := h.sessions.Current(); ok {
		navState := view.NavState{}
		if active, ok := h.nav.Active(); ok {
			navState.Active = string(active)
		}
		for _, v := range nav.AvailableViews(sess.Role) {
			navState.Available = append(navState.Available, string(v))
		}

		out["loggedIn"] = true
		out["nav"] = navState
		if p, ok := h.settings.Profile(); ok {
			out["header"] = view.Header{Name: p.Name, Email: p.Email, Role: p.Role}
		}
	}

	render.OK(c, out)
}

// Activate drives the view state machine: a view outside the role's set
// is rejected with no state change.
func (h *ConsoleHandler) Activate(c *gin.Context) {
	v := nav.ViewID(c.Param("view"))

	err := h.nav.Activate(c.Request.Context(), v)
	switch {
	case err == nil:
	case err == nav.ErrViewNotAllowed:
		middleware.Fail(c, apperr.ForbiddenErr("This view is not available for your role."))
		return
	case err == nav.ErrLoggedOut:
		middleware.Fail(c, apperr.StaleSessionErr(""))
		return
	default:
		// The view switched; its load failed. Keep last-good data and
		// surface the failure as a toast-grade error.
		middleware.Fail(c, err)
		return
	}

	render.OK(c, gin.H{"active": string(v)})
}
