package view

import "github.com/Muhammad-true/mm-shop-admin/internal/views/users"

type UserListItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func UserList(items []users.User) []UserListItem {
	out := make([]UserListItem, 0, len(items))
	for _, u := range items {
		out = append(out, UserListItem{
			ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role,
		})
	}
	return out
}
