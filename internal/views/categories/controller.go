// Package categories is the category list controller: admin-tier CRUD
// with the same load / filter-in-memory / mutate-then-reload contract as
// the other entity views.
package categories

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/listcache"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type Controller struct {
	client *api.Client
	cache  *listcache.Cache[Category]

	mu     sync.Mutex
	search string
}

func NewController(client *api.Client) *Controller {
	return &Controller{client: client, cache: listcache.New[Category]()}
}

func (c *Controller) Load(ctx context.Context) error {
	gen := c.cache.Begin()

	raw, err := c.client.Request(ctx, http.MethodGet, "/api/categories", nil)
	if err != nil {
		return err
	}
	var items []Category
	if err := api.DecodeList(raw, &items, "categories", "items"); err != nil {
		return err
	}
	c.cache.Complete(gen, items)
	return nil
}

func (c *Controller) SetSearch(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = q
}

func (c *Controller) Visible() []Category {
	c.mu.Lock()
	q := strings.ToLower(strings.TrimSpace(c.search))
	c.mu.Unlock()

	items := c.cache.Snapshot()
	if q == "" {
		return items
	}
	out := make([]Category, 0, len(items))
	for _, cat := range items {
		if strings.Contains(strings.ToLower(cat.Name), q) ||
			strings.Contains(strings.ToLower(cat.Description), q) {
			out = append(out, cat)
		}
	}
	return out
}

func (c *Controller) All() []Category { return c.cache.Snapshot() }

type Payload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (c *Controller) Create(ctx context.Context, p Payload) error {
	if _, err := c.client.Request(ctx, http.MethodPost, "/api/categories", p); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Controller) Update(ctx context.Context, id string, p Payload) error {
	if _, err := c.client.Request(ctx, http.MethodPut, "/api/categories/"+id, p); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Controller) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if _, err := c.client.Request(ctx, http.MethodDelete, "/api/categories/"+id, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}
