package products

import (
	"context"
	"net/http"
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/listcache"
)

// Controller owns the products list: wholesale loads into the cache,
// in-memory filtering, and mutate-then-reload. No mutation ever patches
// the cache in place.
type Controller struct {
	client   *api.Client
	sessions *session.Store
	cache    *listcache.Cache[Product]

	mu      sync.Mutex
	filter  FilterSpec
	ownerID string
}

func NewController(client *api.Client, sessions *session.Store) *Controller {
	return &Controller{
		client:   client,
		sessions: sessions,
		cache:    listcache.New[Product](),
	}
}

// SetOwnerScope records the signed-in user's id, used as a client-side
// safety net for roles the server scopes by owner.
func (c *Controller) SetOwnerScope(ownerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ownerID = ownerID
}

// Load fetches the full permitted collection and replaces the cache.
// A load overtaken by a newer one is discarded.
func (c *Controller) Load(ctx context.Context) error {
	gen := c.cache.Begin()

	raw, err := c.client.Request(ctx, http.MethodGet, c.listPath(), nil)
	if err != nil {
		return err
	}
	var items []Product
	if err := api.DecodeList(raw, &items, "products", "items"); err != nil {
		return err
	}

	items = c.scopeToOwner(items)
	c.cache.Complete(gen, items)
	return nil
}

// SetFilter stores the last filter; it never triggers a fetch.
func (c *Controller) SetFilter(spec FilterSpec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = spec
}

// Visible recomputes the filtered view from the cache snapshot.
func (c *Controller) Visible() []Product {
	c.mu.Lock()
	spec := c.filter
	c.mu.Unlock()
	return Filter(c.cache.Snapshot(), spec)
}

// All returns the unfiltered cache snapshot.
func (c *Controller) All() []Product { return c.cache.Snapshot() }

// Get finds one cached product by id.
func (c *Controller) Get(id string) (Product, bool) {
	for _, p := range c.cache.Snapshot() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Payload is the bulk create/update body: the whole product with all of
// its variations submitted in one call.
type Payload struct {
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Description string      `json:"description"`
	Gender      string      `json:"gender"`
	CategoryID  string      `json:"categoryId"`
	Variations  []Variation `json:"variations"`
}

func (c *Controller) Create(ctx context.Context, p Payload) error {
	if _, err := c.client.Request(ctx, http.MethodPost, c.listPath(), p); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Controller) Update(ctx context.Context, id string, p Payload) error {
	if _, err := c.client.Request(ctx, http.MethodPut, c.listPath()+"/"+id, p); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Remove deletes a product. The caller passes the user's confirmation;
// declining is a no-op, not an error.
func (c *Controller) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if _, err := c.client.Request(ctx, http.MethodDelete, c.listPath()+"/"+id, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Controller) listPath() string {
	if sess, ok := c.sessions.Current(); ok && sess.Role == session.RoleShopOwner {
		return "/api/shop/products"
	}
	return "/api/products"
}

// scopeToOwner drops products not owned by the current user for roles
// the server is supposed to scope already. Safety net only; the server
// remains the source of truth.
func (c *Controller) scopeToOwner(items []Product) []Product {
	sess, ok := c.sessions.Current()
	if !ok {
		return items
	}
	if sess.Role != session.RoleShopOwner && sess.Role != session.RoleUser {
		return items
	}

	c.mu.Lock()
	owner := c.ownerID
	c.mu.Unlock()
	if owner == "" {
		return items
	}

	out := make([]Product, 0, len(items))
	for _, p := range items {
		if p.OwnerID == owner {
			out = append(out, p)
		}
	}
	return out
}
