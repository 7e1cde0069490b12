// Package dashboard loads the landing-view aggregates. For shop owners
// the numbers come from the shop-scoped endpoints together with the
// shop's customer list.
package dashboard

import (
	"context"
	"net/http"
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
)

type Stats struct {
	Products   int     `json:"products"`
	Categories int     `json:"categories"`
	Users      int     `json:"users"`
	Orders     int     `json:"orders"`
	Revenue    float64 `json:"revenue"`
}

type Customer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

type Controller struct {
	client   *api.Client
	sessions *session.Store

	mu        sync.Mutex
	stats     Stats
	customers []Customer
}

func NewController(client *api.Client, sessions *session.Store) *Controller {
	return &Controller{client: client, sessions: sessions}
}

func (c *Controller) Load(ctx context.Context) error {
	shopOwner := false
	if sess, ok := c.sessions.Current(); ok {
		shopOwner = sess.Role == session.RoleShopOwner
	}

	path := "/api/admin/stats"
	if shopOwner {
		path = "/api/shop/stats"
	}
	raw, err := c.client.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	var stats Stats
	if err := api.DecodeObject(raw, &stats); err != nil {
		return err
	}

	var customers []Customer
	if shopOwner {
		raw, err := c.client.Request(ctx, http.MethodGet, "/api/shop/customers", nil)
		if err != nil {
			return err
		}
		if err := api.DecodeList(raw, &customers, "customers", "items"); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = stats
	c.customers = customers
	return nil
}

func (c *Controller) State() (Stats, []Customer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats, c.customers
}
