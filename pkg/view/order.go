package view

import "github.com/Muhammad-true/mm-shop-admin/internal/views/orders"

type OrderListItem struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Customer  string   `json:"customer"`
	Total     string   `json:"total"`
	ItemCount int      `json:"itemCount"`
	CreatedAt string   `json:"createdAt"`
	Actions   []string `json:"actions"`
}

type OrdersPage struct {
	Items      []OrderListItem `json:"items"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Stats      orders.Stats    `json:"stats"`
}

// OrderList builds the orders page. Affordances come from the mirrored
// status lifecycle: terminal orders get none.
func OrderList(items []orders.Order, pg orders.Pagination, stats orders.Stats) OrdersPage {
	out := OrdersPage{Page: pg.Page, TotalPages: pg.TotalPages, Stats: stats}
	for _, o := range items {
		item := OrderListItem{
			ID:        o.ID,
			Status:    string(o.Status),
			Customer:  o.CustomerName,
			Total:     FormatPrice(o.Total),
			ItemCount: o.ItemCount,
			CreatedAt: o.CreatedAt,
		}
		for _, a := range orders.Actions(o.Status) {
			item.Actions = append(item.Actions, string(a))
		}
		out.Items = append(out.Items, item)
	}
	return out
}
