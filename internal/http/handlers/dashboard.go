package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/dashboard"
)

type DashboardHandler struct {
	ctrl *dashboard.Controller
}

func NewDashboardHandler(ctrl *dashboard.Controller) *DashboardHandler {
	return &DashboardHandler{ctrl: ctrl}
}

func (h *DashboardHandler) State(c *gin.Context) {
	stats, customers := h.ctrl.State()
	out := gin.H{"stats": stats}
	if customers != nil {
		out["customers"] = customers
	}
	render.OK(c, out)
}
