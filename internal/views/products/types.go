package products

// Variation is one purchasable size/color/price/stock combination of a
// product, as the API returns it.
type Variation struct {
	ID              string   `json:"id"`
	SKU             string   `json:"sku"`
	Sizes           []string `json:"sizes"`
	Colors          []string `json:"colors"`
	Price           float64  `json:"price"`
	DiscountPercent int      `json:"discountPercent"`
	StockQuantity   int      `json:"stockQuantity"`
	ImageURLs       []string `json:"imageUrls"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Description string      `json:"description"`
	Gender      string      `json:"gender"`
	CategoryID  string      `json:"categoryId"`
	OwnerID     string      `json:"ownerId"`
	Variations  []Variation `json:"variations"`
}

// FilterSpec narrows the cached list without a round trip.
type FilterSpec struct {
	Search     string
	CategoryID string
}

func (f FilterSpec) Zero() bool { return f.Search == "" && f.CategoryID == "" }
