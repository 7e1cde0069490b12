package view

import "fmt"

// FormatPrice renders an API price for display.
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// DiscountedPrice applies a percent discount for display only; the API
// owns the actual pricing math.
func DiscountedPrice(price float64, discountPercent int) string {
	if discountPercent <= 0 || discountPercent > 100 {
		return FormatPrice(price)
	}
	return FormatPrice(price * (100 - float64(discountPercent)) / 100)
}
