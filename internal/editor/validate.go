package editor

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

var formValidator = validator.New()

// Validate checks the whole edit session before submit and collects
// every violation into one Invalid error. Nothing is sent upstream while
// any violation exists; the caller shows all of them at once.
func (s *EditSession) Validate() error {
	s.mu.Lock()
	form := s.form
	drafts := make([]Draft, 0, len(s.variations))
	for _, d := range s.variations {
		drafts = append(drafts, *d)
	}
	s.mu.Unlock()

	fields := map[string]string{}

	if err := formValidator.Struct(form); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				fields[jsonKey(fe.Field())] = messageForTag(fe.Tag())
			}
		}
	}

	if len(drafts) == 0 {
		fields["variations"] = "Add at least one variation."
	}
	for i, d := range drafts {
		key := func(f string) string { return fmt.Sprintf("variations[%d].%s", i, f) }
		if len(d.Sizes) == 0 {
			fields[key("sizes")] = "Select at least one size."
		}
		if len(d.Colors) == 0 {
			fields[key("colors")] = "Select at least one color."
		}
		if d.Price <= 0 {
			fields[key("price")] = "Price must be greater than zero."
		}
		if d.StockQuantity < 0 {
			fields[key("stockQuantity")] = "Stock cannot be negative."
		}
		if d.DiscountPercent < 0 || d.DiscountPercent > 100 {
			fields[key("discountPercent")] = "Discount must be between 0 and 100."
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return apperr.InvalidErr("Please fix the highlighted fields.", fields)
}

func jsonKey(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Brand":
		return "brand"
	case "Description":
		return "description"
	case "Gender":
		return "gender"
	case "CategoryID":
		return "categoryId"
	}
	return structField
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "This field is required."
	default:
		return "Invalid value."
	}
}
