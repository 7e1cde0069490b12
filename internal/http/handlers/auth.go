package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/auth"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/validation"
	"github.com/Muhammad-true/mm-shop-admin/internal/nav"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/settings"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	auth     *auth.Service
	nav      *nav.Controller
	sessions *session.Store
	settings *settings.Controller
	products *products.Controller
}

func NewAuthHandler(a *auth.Service, n *nav.Controller, s *session.Store, set *settings.Controller, p *products.Controller) *AuthHandler {
	return &AuthHandler{auth: a, nav: n, sessions: s, settings: set, products: p}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Check the login form.", errs))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	// Owner scope for the client-side product safety net.
	h.products.SetOwnerScope(user.ID)

	if err := h.nav.Ensure(c.Request.Context()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Toast(c, h.navState(), view.FlashSuccess, "Signed in.")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	h.nav.Logout()
	render.Toast(c, gin.H{"loggedOut": true}, view.FlashInfo, "Signed out.")
}

func (h *AuthHandler) navState() view.NavState {
	out := view.NavState{}
	if active, ok := h.nav.Active(); ok {
		out.Active = string(active)
	}
	if sess, ok := h.sessions.Current(); ok {
		for _, v := range nav.AvailableViews(sess.Role) {
			out.Available = append(out.Available, string(v))
		}
	}
	return out
}
