package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/validation"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/categories"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type categoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type CategoriesHandler struct {
	ctrl *categories.Controller
}

func NewCategoriesHandler(ctrl *categories.Controller) *CategoriesHandler {
	return &CategoriesHandler{ctrl: ctrl}
}

func (h *CategoriesHandler) List(c *gin.Context) {
	h.ctrl.SetSearch(c.Query("search"))
	render.OK(c, view.CategoryList(h.ctrl.Visible()))
}

func (h *CategoriesHandler) Create(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the category form.", validation.FromBindError(err, &in)))
		return
	}

	err := h.ctrl.Create(c.Request.Context(), categories.Payload{
		Name: in.Name, Description: in.Description, ImageURL: in.ImageURL,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Toast(c, view.CategoryList(h.ctrl.Visible()), view.FlashSuccess, "Category created.")
}

func (h *CategoriesHandler) Update(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the category form.", validation.FromBindError(err, &in)))
		return
	}

	err := h.ctrl.Update(c.Request.Context(), c.Param("id"), categories.Payload{
		Name: in.Name, Description: in.Description, ImageURL: in.ImageURL,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Toast(c, view.CategoryList(h.ctrl.Visible()), view.FlashSuccess, "Category updated.")
}

func (h *CategoriesHandler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "1" || c.PostForm("confirm") == "1"
	if !confirmed {
		render.OK(c, gin.H{"deleted": false, "reason": "not confirmed"})
		return
	}

	if err := h.ctrl.Remove(c.Request.Context(), c.Param("id"), true); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Toast(c, view.CategoryList(h.ctrl.Visible()), view.FlashSuccess, "Category deleted.")
}
