package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/validation"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/users"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type userInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role" binding:"required"`
}

type UsersHandler struct {
	ctrl *users.Controller
}

func NewUsersHandler(ctrl *users.Controller) *UsersHandler {
	return &UsersHandler{ctrl: ctrl}
}

func (h *UsersHandler) List(c *gin.Context) {
	h.ctrl.SetSearch(c.Query("search"))
	render.OK(c, view.UserList(h.ctrl.Visible()))
}

func (h *UsersHandler) Update(c *gin.Context) {
	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the user form.", validation.FromBindError(err, &in)))
		return
	}

	err := h.ctrl.Update(c.Request.Context(), c.Param("id"), users.Payload{
		Name: in.Name, Email: in.Email, Phone: in.Phone, Role: in.Role,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Toast(c, view.UserList(h.ctrl.Visible()), view.FlashSuccess, "User updated.")
}

func (h *UsersHandler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "1" || c.PostForm("confirm") == "1"
	if !confirmed {
		render.OK(c, gin.H{"deleted": false, "reason": "not confirmed"})
		return
	}

	if err := h.ctrl.Remove(c.Request.Context(), c.Param("id"), true); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Toast(c, view.UserList(h.ctrl.Visible()), view.FlashSuccess, "User deleted.")
}
