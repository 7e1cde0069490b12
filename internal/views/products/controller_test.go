package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/kvstore"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
)

// fakeAPI serves the product endpoints from an in-memory slice and
// counts requests per method.
type fakeAPI struct {
	mu       sync.Mutex
	items    []Product
	requests []string
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			body, _ := json.Marshal(map[string]any{"success": true, "data": f.items})
			f.mu.Unlock()
			w.Write(body)
			return
		case http.MethodPost:
			var p Payload
			_ = json.NewDecoder(r.Body).Decode(&p)
			f.items = append(f.items, Product{
				ID: fmt.Sprintf("p-%d", len(f.items)+1), Name: p.Name, CategoryID: p.CategoryID,
			})
		case http.MethodPut:
			var p Payload
			_ = json.NewDecoder(r.Body).Decode(&p)
			for i := range f.items {
				if "/api/products/"+f.items[i].ID == r.URL.Path {
					f.items[i].Name = p.Name
				}
			}
		case http.MethodDelete:
			kept := f.items[:0]
			for _, it := range f.items {
				if "/api/products/"+it.ID != r.URL.Path {
					kept = append(kept, it)
				}
			}
			f.items = kept
		}
		f.mu.Unlock()
		w.Write([]byte(`{"success":true,"data":{}}`))
	})
}

func (f *fakeAPI) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r[:len(method)] == method {
			n++
		}
	}
	return n
}

func newTestController(t *testing.T, f *fakeAPI, role session.Role) (*Controller, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	sessions := session.NewStore(kvstore.NewMemory())
	require.NoError(t, sessions.Establish("tok-1", role, time.Now()))
	return NewController(api.NewClient(srv.URL, sessions), sessions), srv
}

func TestLoadReplacesCache(t *testing.T) {
	f := &fakeAPI{items: []Product{{ID: "p-1", Name: "Shirt"}}}
	c, _ := newTestController(t, f, session.RoleAdmin)

	require.NoError(t, c.Load(context.Background()))
	require.Len(t, c.All(), 1)
	assert.Equal(t, "Shirt", c.All()[0].Name)
}

func TestCreateReloadsWholesale(t *testing.T) {
	f := &fakeAPI{items: []Product{{ID: "p-1", Name: "Shirt"}}}
	c, _ := newTestController(t, f, session.RoleAdmin)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Create(context.Background(), Payload{Name: "Jacket"}))

	// The cache shows the server's collection, not a local patch.
	require.Len(t, c.All(), 2)
	assert.Equal(t, 2, f.count(http.MethodGet))
}

func TestUpdateReloadsWholesale(t *testing.T) {
	f := &fakeAPI{items: []Product{{ID: "p-1", Name: "Shirt"}}}
	c, _ := newTestController(t, f, session.RoleAdmin)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Update(context.Background(), "p-1", Payload{Name: "Renamed"}))

	got, ok := c.Get("p-1")
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)
}

func TestRemoveDeclinedIsNoop(t *testing.T) {
	f := &fakeAPI{items: []Product{{ID: "p-1", Name: "Shirt"}}}
	c, _ := newTestController(t, f, session.RoleAdmin)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Remove(context.Background(), "p-1", false))
	assert.Zero(t, f.count(http.MethodDelete))
	assert.Len(t, c.All(), 1)
}

func TestRemoveConfirmed(t *testing.T) {
	f := &fakeAPI{items: []Product{{ID: "p-1", Name: "Shirt"}}}
	c, _ := newTestController(t, f, session.RoleAdmin)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Remove(context.Background(), "p-1", true))
	assert.Equal(t, 1, f.count(http.MethodDelete))
	assert.Empty(t, c.All())
}

func TestFilterNeverFetches(t *testing.T) {
	f := &fakeAPI{items: []Product{
		{ID: "p-1", Name: "Shirt", CategoryID: "cat-1"},
		{ID: "p-2", Name: "Shoe", CategoryID: "cat-2"},
	}}
	c, _ := newTestController(t, f, session.RoleAdmin)
	require.NoError(t, c.Load(context.Background()))
	before := f.count(http.MethodGet)

	c.SetFilter(FilterSpec{CategoryID: "cat-2"})
	visible := c.Visible()

	require.Len(t, visible, 1)
	assert.Equal(t, "p-2", visible[0].ID)
	assert.Equal(t, before, f.count(http.MethodGet))
	// The unfiltered cache is untouched.
	assert.Len(t, c.All(), 2)
}

func TestShopOwnerUsesShopPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	sessions := session.NewStore(kvstore.NewMemory())
	require.NoError(t, sessions.Establish("tok-1", session.RoleShopOwner, time.Now()))
	c := NewController(api.NewClient(srv.URL, sessions), sessions)

	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, "/api/shop/products", gotPath)
}

func TestOwnerScopeFiltersForeignProducts(t *testing.T) {
	f := &fakeAPI{items: []Product{
		{ID: "p-1", Name: "Mine", OwnerID: "u-1"},
		{ID: "p-2", Name: "Theirs", OwnerID: "u-2"},
	}}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	sessions := session.NewStore(kvstore.NewMemory())
	require.NoError(t, sessions.Establish("tok-1", session.RoleShopOwner, time.Now()))
	c := NewController(api.NewClient(srv.URL, sessions), sessions)
	c.SetOwnerScope("u-1")

	require.NoError(t, c.Load(context.Background()))
	require.Len(t, c.All(), 1)
	assert.Equal(t, "p-1", c.All()[0].ID)
}

func TestAdminSeesAllOwners(t *testing.T) {
	f := &fakeAPI{items: []Product{
		{ID: "p-1", OwnerID: "u-1"},
		{ID: "p-2", OwnerID: "u-2"},
	}}
	c, _ := newTestController(t, f, session.RoleAdmin)
	c.SetOwnerScope("u-1")

	require.NoError(t, c.Load(context.Background()))
	assert.Len(t, c.All(), 2)
}
