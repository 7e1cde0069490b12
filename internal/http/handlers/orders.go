package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/orders"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type OrdersHandler struct {
	ctrl *orders.Controller
}

func NewOrdersHandler(ctrl *orders.Controller) *OrdersHandler {
	return &OrdersHandler{ctrl: ctrl}
}

// List serves the orders page. With page/filter params it moves there;
// without them it refreshes the page and filters the controller already
// holds, so actions never bounce the user elsewhere.
func (h *OrdersHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var err error
	switch {
	case c.Query("status") != "" || c.Query("search") != "":
		err = h.ctrl.SetFilters(ctx, orders.Filters{
			Status: orders.Status(c.Query("status")),
			Search: strings.TrimSpace(c.Query("search")),
		})
	case c.Query("page") != "":
		err = h.ctrl.SetPage(ctx, parseInt(c.Query("page"), 1))
	default:
		err = h.ctrl.Load(ctx)
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	items, pg, stats := h.ctrl.State()
	render.OK(c, view.OrderList(items, pg, stats))
}

func (h *OrdersHandler) Confirm(c *gin.Context) {
	if err := h.ctrl.Confirm(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	items, pg, stats := h.ctrl.State()
	render.Toast(c, view.OrderList(items, pg, stats), view.FlashSuccess, "Order confirmed.")
}

func (h *OrdersHandler) Reject(c *gin.Context) {
	if err := h.ctrl.Reject(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	items, pg, stats := h.ctrl.State()
	render.Toast(c, view.OrderList(items, pg, stats), view.FlashWarning, "Order rejected.")
}

func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("A target status is required.", nil))
		return
	}

	if err := h.ctrl.UpdateStatus(c.Request.Context(), c.Param("id"), orders.Status(in.Status)); err != nil {
		middleware.Fail(c, err)
		return
	}
	items, pg, stats := h.ctrl.State()
	render.Toast(c, view.OrderList(items, pg, stats), view.FlashSuccess, "Order status updated.")
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
