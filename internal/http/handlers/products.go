package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type ProductsHandler struct {
	ctrl *products.Controller
}

func NewProductsHandler(ctrl *products.Controller) *ProductsHandler {
	return &ProductsHandler{ctrl: ctrl}
}

// List applies the filter to the cached list; it never fetches.
func (h *ProductsHandler) List(c *gin.Context) {
	spec := products.FilterSpec{
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
	}
	h.ctrl.SetFilter(spec)
	render.OK(c, view.ProductList(h.ctrl.Visible(), spec.Search))
}

// Delete requires the explicit confirmation flag; without it nothing
// happens and nothing fails.
func (h *ProductsHandler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "1" || c.PostForm("confirm") == "1"
	if !confirmed {
		render.OK(c, gin.H{"deleted": false, "reason": "not confirmed"})
		return
	}

	if err := h.ctrl.Remove(c.Request.Context(), c.Param("id"), true); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Toast(c, view.ProductList(h.ctrl.Visible(), ""), view.FlashSuccess, "Product deleted.")
}
