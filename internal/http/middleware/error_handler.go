package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/nav"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler drains gin errors into one JSON failure. A stale-session
// error additionally forces the state machine back to logged out; this
// is the single place that cross-cutting reaction lives.
func ErrorHandler(l *slog.Logger, navCtrl *nav.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		publicMsg := apperr.PublicMessage(err)
		rid := GetRequestID(c)

		if apperr.IsStaleSession(err) {
			navCtrl.HandleAuthFailure()
		}

		l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		payload := gin.H{
			"error":      publicMsg,
			"request_id": rid,
		}
		if ae, ok := apperr.As(err); ok {
			payload["kind"] = string(ae.Kind)
			if len(ae.Fields) > 0 {
				payload["fields"] = ae.Fields
			}
		}
		c.AbortWithStatusJSON(status, payload)
	}
}
