// Package roles is the super-admin-only, read-only role listing.
package roles

import (
	"context"
	"net/http"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/listcache"
)

type RoleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UserCount   int    `json:"userCount"`
}

type Controller struct {
	client *api.Client
	cache  *listcache.Cache[RoleInfo]
}

func NewController(client *api.Client) *Controller {
	return &Controller{client: client, cache: listcache.New[RoleInfo]()}
}

func (c *Controller) Load(ctx context.Context) error {
	gen := c.cache.Begin()

	raw, err := c.client.Request(ctx, http.MethodGet, "/api/admin/roles", nil)
	if err != nil {
		return err
	}
	var items []RoleInfo
	if err := api.DecodeList(raw, &items, "roles", "items"); err != nil {
		return err
	}
	c.cache.Complete(gen, items)
	return nil
}

func (c *Controller) All() []RoleInfo { return c.cache.Snapshot() }
