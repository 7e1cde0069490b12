// Package orders is the orders view controller. Unlike the other entity
// views the collection is paginated server-side; the controller keeps
// the current page and filters as its own state and passes them
// unchanged on every refresh, so a status change never moves the user
// off their page.
package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

type Order struct {
	ID            string  `json:"id"`
	Status        Status  `json:"status"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Total         float64 `json:"total"`
	ItemCount     int     `json:"itemCount"`
	CreatedAt     string  `json:"createdAt"`
}

type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

type Stats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Active    int     `json:"active"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}

type page struct {
	Items      []Order    `json:"items"`
	Pagination Pagination `json:"pagination"`
	Stats      Stats      `json:"stats"`
}

// Filters is the server-side filter set for the orders list.
type Filters struct {
	Status Status
	Search string
}

type Controller struct {
	client   *api.Client
	sessions *session.Store

	mu      sync.Mutex
	gen     uint64
	items   []Order
	pg      Pagination
	stats   Stats
	current int
	filters Filters
}

func NewController(client *api.Client, sessions *session.Store) *Controller {
	return &Controller{client: client, sessions: sessions, current: 1}
}

// Load fetches the current page with the current filters.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	pageNo := c.current
	filters := c.filters
	c.mu.Unlock()

	raw, err := c.client.Request(ctx, http.MethodGet, c.listPath(pageNo, filters), nil)
	if err != nil {
		return err
	}
	var res page
	if err := api.DecodeObject(raw, &res); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil // overtaken by a newer load
	}
	c.items = res.Items
	c.pg = res.Pagination
	c.stats = res.Stats
	return nil
}

// SetPage moves to a page and reloads.
func (c *Controller) SetPage(ctx context.Context, pageNo int) error {
	if pageNo < 1 {
		pageNo = 1
	}
	c.mu.Lock()
	c.current = pageNo
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetFilters replaces the filters, resets to page one and reloads.
func (c *Controller) SetFilters(ctx context.Context, f Filters) error {
	c.mu.Lock()
	c.filters = f
	c.current = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// State returns the rendered page state.
func (c *Controller) State() ([]Order, Pagination, Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items, c.pg, c.stats
}

// Confirm moves a pending order to confirmed, then refreshes the same
// page and filters.
func (c *Controller) Confirm(ctx context.Context, id string) error {
	return c.action(ctx, id, StatusConfirmed, "/confirm")
}

// Reject cancels a pending order.
func (c *Controller) Reject(ctx context.Context, id string) error {
	return c.action(ctx, id, StatusCancelled, "/reject")
}

// UpdateStatus applies an explicit transition after checking it against
// the mirrored lifecycle, so the console never offers the server an
// impossible move.
func (c *Controller) UpdateStatus(ctx context.Context, id string, to Status) error {
	from, ok := c.find(id)
	if ok && !CanTransition(from.Status, to) {
		return apperr.InvalidErr(
			fmt.Sprintf("Order cannot move from %s to %s.", from.Status, to), nil)
	}
	body := map[string]string{"status": string(to)}
	if _, err := c.client.Request(ctx, http.MethodPut, c.basePath()+"/"+id+"/status", body); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Controller) action(ctx context.Context, id string, to Status, suffix string) error {
	if from, ok := c.find(id); ok && !CanTransition(from.Status, to) {
		return apperr.InvalidErr(
			fmt.Sprintf("Order cannot move from %s to %s.", from.Status, to), nil)
	}
	if _, err := c.client.Request(ctx, http.MethodPost, c.basePath()+"/"+id+suffix, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Controller) find(id string) (Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.items {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (c *Controller) basePath() string {
	if sess, ok := c.sessions.Current(); ok && sess.Role == session.RoleShopOwner {
		return "/api/shop/orders"
	}
	return "/api/orders"
}

func (c *Controller) listPath(pageNo int, f Filters) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(pageNo))
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return c.basePath() + "?" + q.Encode()
}
