// Package editor owns the product edit session: one object with an
// explicit open/close lifecycle that holds every draft the form touches.
// Nothing in here is ambient state; handlers receive the session and the
// whole draft set dies with Close, saved or not.
package editor

import (
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
)

// Form is the product-level draft.
type Form struct {
	Name        string `json:"name" validate:"required"`
	Brand       string `json:"brand"`
	Description string `json:"description" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	CategoryID  string `json:"categoryId" validate:"required"`
}

// EditSession scopes one product create/edit flow. ProductID is empty
// for "new".
type EditSession struct {
	mu         sync.Mutex
	open       bool
	productID  string
	form       Form
	variations []*Draft
}

func NewEditSession() *EditSession {
	return &EditSession{}
}

// Open starts a fresh edit flow, discarding any previous drafts. For an
// existing product the server-side variations seed the drafts.
func (s *EditSession) Open(p *products.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = true
	s.productID = ""
	s.form = Form{}
	s.variations = nil

	if p == nil {
		return
	}
	s.productID = p.ID
	s.form = Form{
		Name:        p.Name,
		Brand:       p.Brand,
		Description: p.Description,
		Gender:      p.Gender,
		CategoryID:  p.CategoryID,
	}
	for _, v := range p.Variations {
		s.variations = append(s.variations, draftFrom(v))
	}
}

// Close ends the flow and discards all drafts, on save and on cancel alike.
func (s *EditSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.productID = ""
	s.form = Form{}
	s.variations = nil
}

func (s *EditSession) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *EditSession) ProductID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productID
}

func (s *EditSession) SetForm(f Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

func (s *EditSession) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Payload assembles the single bulk submit body from the form and every
// variation draft. Local draft ids never leave the process.
func (s *EditSession) Payload() products.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := products.Payload{
		Name:        s.form.Name,
		Brand:       s.form.Brand,
		Description: s.form.Description,
		Gender:      s.form.Gender,
		CategoryID:  s.form.CategoryID,
	}
	for _, d := range s.variations {
		out.Variations = append(out.Variations, d.toVariation())
	}
	return out
}
