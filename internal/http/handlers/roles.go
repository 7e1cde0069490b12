package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/roles"
)

type RolesHandler struct {
	ctrl *roles.Controller
}

func NewRolesHandler(ctrl *roles.Controller) *RolesHandler {
	return &RolesHandler{ctrl: ctrl}
}

func (h *RolesHandler) List(c *gin.Context) {
	render.OK(c, h.ctrl.All())
}
