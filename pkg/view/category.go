package view

import "github.com/Muhammad-true/mm-shop-admin/internal/views/categories"

type CategoryListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func CategoryList(items []categories.Category) []CategoryListItem {
	out := make([]CategoryListItem, 0, len(items))
	for _, c := range items {
		out = append(out, CategoryListItem{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			ImageURL:    c.ImageURL,
		})
	}
	return out
}
