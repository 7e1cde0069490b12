package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/nav"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

// RequireSession rejects requests while logged out.
func RequireSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessions.Current(); !ok {
			Fail(c, apperr.StaleSessionErr("Sign in to use the console."))
			return
		}
		c.Next()
	}
}

// RequireView gates a route group on the navigation table. Role checks
// happen here and in nav only; handlers never compare role strings.
func RequireView(sessions *session.Store, v nav.ViewID) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current()
		if !ok {
			Fail(c, apperr.StaleSessionErr("Sign in to use the console."))
			return
		}
		if !nav.Allowed(sess.Role, v) {
			Fail(c, apperr.ForbiddenErr("This view is not available for your role."))
			return
		}
		c.Next()
	}
}
