package editor

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
)

// Draft is one in-memory variation row of the edit form. LocalID exists
// only to address the row from the UI and is never submitted.
type Draft struct {
	LocalID         string
	RemoteID        string // set when editing an existing variation
	SKU             string
	Sizes           []string
	Colors          []string
	Price           float64
	DiscountPercent int
	StockQuantity   int
	ImageURLs       []string
}

// Set-valued fields addressed by UpdateMultiField.
const (
	FieldSizes  = "sizes"
	FieldColors = "colors"
)

var ErrNoSuchVariation = errors.New("editor: no variation at index")

func draftFrom(v products.Variation) *Draft {
	return &Draft{
		LocalID:         uuid.NewString(),
		RemoteID:        v.ID,
		SKU:             v.SKU,
		Sizes:           append([]string(nil), v.Sizes...),
		Colors:          append([]string(nil), v.Colors...),
		Price:           v.Price,
		DiscountPercent: v.DiscountPercent,
		StockQuantity:   v.StockQuantity,
		ImageURLs:       append([]string(nil), v.ImageURLs...),
	}
}

func (d *Draft) toVariation() products.Variation {
	return products.Variation{
		ID:              d.RemoteID,
		SKU:             d.SKU,
		Sizes:           append([]string(nil), d.Sizes...),
		Colors:          append([]string(nil), d.Colors...),
		Price:           d.Price,
		DiscountPercent: d.DiscountPercent,
		StockQuantity:   d.StockQuantity,
		ImageURLs:       append([]string(nil), d.ImageURLs...),
	}
}

// AddVariation appends an empty draft and returns its local id.
func (s *EditSession) AddVariation() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &Draft{LocalID: uuid.NewString()}
	s.variations = append(s.variations, d)
	return d.LocalID
}

// RemoveVariation drops the draft at index.
func (s *EditSession) RemoveVariation(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.variations) {
		return ErrNoSuchVariation
	}
	s.variations = append(s.variations[:index], s.variations[index+1:]...)
	return nil
}

// Variations returns copies of the drafts in order.
func (s *EditSession) Variations() []Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Draft, 0, len(s.variations))
	for _, d := range s.variations {
		out = append(out, *d)
	}
	return out
}

// UpdateField mutates one scalar field of the draft at index.
func (s *EditSession) UpdateField(index int, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draftAt(index)
	if err != nil {
		return err
	}

	switch field {
	case "sku":
		v, ok := value.(string)
		if !ok {
			return errors.New("editor: sku expects a string")
		}
		d.SKU = v
	case "price":
		v, ok := toFloat(value)
		if !ok {
			return errors.New("editor: price expects a number")
		}
		d.Price = v
	case "discountPercent":
		v, ok := toInt(value)
		if !ok {
			return errors.New("editor: discountPercent expects an integer")
		}
		d.DiscountPercent = v
	case "stockQuantity":
		v, ok := toInt(value)
		if !ok {
			return errors.New("editor: stockQuantity expects an integer")
		}
		d.StockQuantity = v
	default:
		return errors.New("editor: unknown field " + field)
	}
	return nil
}

// UpdateMultiField adds or removes one value of a set-valued field
// (sizes, colors) on the draft at index.
func (s *EditSession) UpdateMultiField(index int, field, value string, included bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draftAt(index)
	if err != nil {
		return err
	}

	var set *[]string
	switch field {
	case FieldSizes:
		set = &d.Sizes
	case FieldColors:
		set = &d.Colors
	default:
		return errors.New("editor: unknown multi field " + field)
	}

	if included {
		for _, v := range *set {
			if v == value {
				return nil
			}
		}
		*set = append(*set, value)
		return nil
	}

	out := (*set)[:0]
	for _, v := range *set {
		if v != value {
			out = append(out, v)
		}
	}
	*set = out
	return nil
}

func (s *EditSession) draftAt(index int) (*Draft, error) {
	if index < 0 || index >= len(s.variations) {
		return nil, ErrNoSuchVariation
	}
	return s.variations[index], nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}
