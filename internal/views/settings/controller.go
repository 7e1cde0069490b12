// Package settings loads and updates the signed-in user's profile. The
// cached profile blob from the session store bridges the gap until the
// first fetch resolves.
package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
)

type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	ShopID string `json:"shopId"`
}

type Controller struct {
	client   *api.Client
	sessions *session.Store

	mu      sync.Mutex
	profile Profile
	loaded  bool
}

func NewController(client *api.Client, sessions *session.Store) *Controller {
	return &Controller{client: client, sessions: sessions}
}

func (c *Controller) Load(ctx context.Context) error {
	raw, err := c.client.Request(ctx, http.MethodGet, "/api/auth/profile", nil)
	if err != nil {
		return err
	}
	var p Profile
	if err := api.DecodeObject(raw, &p); err != nil {
		return err
	}

	if b, err := json.Marshal(p); err == nil {
		c.sessions.SaveProfile(string(b))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = p
	c.loaded = true
	return nil
}

// Profile returns the freshest profile available: the fetched one, or
// the cached blob restored from disk before the first fetch resolved.
func (c *Controller) Profile() (Profile, bool) {
	c.mu.Lock()
	if c.loaded {
		defer c.mu.Unlock()
		return c.profile, true
	}
	c.mu.Unlock()

	blob, ok := c.sessions.CachedProfile()
	if !ok {
		return Profile{}, false
	}
	var p Profile
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return Profile{}, false
	}
	return p, true
}

type Payload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (c *Controller) Update(ctx context.Context, p Payload) error {
	if _, err := c.client.Request(ctx, http.MethodPut, "/api/auth/profile", p); err != nil {
		return err
	}
	return c.Load(ctx)
}
