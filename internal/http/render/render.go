package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/flash"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

// OK wraps a view model with the pending toast, if any.
func OK(c *gin.Context, data any) {
	payload := gin.H{"data": data}
	if f := middleware.GetFlash(c); f != nil {
		payload["flash"] = f
	}
	c.JSON(http.StatusOK, payload)
}

// Toast responds with data plus an immediate toast.
func Toast(c *gin.Context, data any, kind view.FlashKind, msg string) {
	c.JSON(http.StatusOK, gin.H{
		"data":  data,
		"flash": view.Flash{Kind: kind, Message: msg},
	})
}

// RedirectWithFlash carries a toast across a redirect via the signed cookie.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
