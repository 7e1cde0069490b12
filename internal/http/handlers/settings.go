package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/validation"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/settings"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type SettingsHandler struct {
	ctrl *settings.Controller
}

func NewSettingsHandler(ctrl *settings.Controller) *SettingsHandler {
	return &SettingsHandler{ctrl: ctrl}
}

func (h *SettingsHandler) State(c *gin.Context) {
	p, ok := h.ctrl.Profile()
	if !ok {
		render.OK(c, gin.H{"profile": nil})
		return
	}
	render.OK(c, gin.H{"profile": p})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the profile form.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.ctrl.Update(c.Request.Context(), settings.Payload{Name: in.Name, Phone: in.Phone}); err != nil {
		middleware.Fail(c, err)
		return
	}
	p, _ := h.ctrl.Profile()
	render.Toast(c, gin.H{"profile": p}, view.FlashSuccess, "Profile updated.")
}
