// Package users is the admin-only user list controller.
package users

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/listcache"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type Controller struct {
	client *api.Client
	cache  *listcache.Cache[User]

	mu     sync.Mutex
	search string
}

func NewController(client *api.Client) *Controller {
	return &Controller{client: client, cache: listcache.New[User]()}
}

func (c *Controller) Load(ctx context.Context) error {
	gen := c.cache.Begin()

	raw, err := c.client.Request(ctx, http.MethodGet, "/api/admin/users", nil)
	if err != nil {
		return err
	}
	var items []User
	if err := api.DecodeList(raw, &items, "users", "items"); err != nil {
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

func (c *Controller) Visible() []User {
	c.mu.Lock()
	q := strings.ToLower(strings.TrimSpace(c.search))
	c.mu.Unlock()

	items := c.cache.Snapshot()
	if q == "" {
		return items
	}
	out := make([]User, 0, len(items))
	for _, u := range items {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}

type Payload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (c *Controller) Update(ctx context.Context, id string, p Payload) error {
	if _, err := c.client.Request(ctx, http.MethodPut, "/api/admin/users/"+id, p); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Controller) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if _, err := c.client.Request(ctx, http.MethodDelete, "/api/admin/users/"+id, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}
