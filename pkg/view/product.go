package view

import "github.com/Muhammad-true/mm-shop-admin/internal/views/products"

type ProductVariation struct {
	SKU      string   `json:"sku"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	Price    string   `json:"price"`
	Final    string   `json:"finalPrice"`
	Stock    int      `json:"stock"`
	ImageURL string   `json:"imageUrl"` // first image, list thumbnails only need one
}

type ProductListItem struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Brand      string             `json:"brand"`
	CategoryID string             `json:"categoryId"`
	Variations []ProductVariation `json:"variations"`
}

type ProductListPage struct {
	Items  []ProductListItem `json:"items"`
	Search string            `json:"search"`
	Total  int               `json:"total"`
}

// ProductList builds the display structure from a filtered cache
// snapshot. It only reads; the cache is never mutated here.
func ProductList(items []products.Product, search string) ProductListPage {
	out := ProductListPage{Search: search, Total: len(items)}
	for _, p := range items {
		item := ProductListItem{
			ID:         p.ID,
			Name:       p.Name,
			Brand:      p.Brand,
			CategoryID: p.CategoryID,
		}
		for _, v := range p.Variations {
			pv := ProductVariation{
				SKU:    v.SKU,
				Sizes:  v.Sizes,
				Colors: v.Colors,
				Price:  FormatPrice(v.Price),
				Final:  DiscountedPrice(v.Price, v.DiscountPercent),
				Stock:  v.StockQuantity,
			}
			if len(v.ImageURLs) > 0 {
				pv.ImageURL = v.ImageURLs[0]
			}
			item.Variations = append(item.Variations, pv)
		}
		out.Items = append(out.Items, item)
	}
	return out
}
