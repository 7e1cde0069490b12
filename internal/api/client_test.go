package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammad-true/mm-shop-admin/internal/kvstore"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

func testSessions(t *testing.T, token string) *session.Store {
	t.Helper()
	s := session.NewStore(kvstore.NewMemory())
	if token != "" {
		require.NoError(t, s.Establish(token, session.RoleAdmin, time.Now()))
	}
	return s
}

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSessions(t, "tok-1"))
	_, err := c.Request(context.Background(), http.MethodGet, "/api/products", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestRequestWithoutSessionSendsNoAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSessions(t, ""))
	_, err := c.Request(context.Background(), http.MethodPost, "api/auth/login", map[string]string{"email": "a@b"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRequestUnauthorizedIsStaleSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSessions(t, "tok-1"))
	_, err := c.Request(context.Background(), http.MethodGet, "/api/products", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsStaleSession(err))
	assert.Equal(t, "Unauthorized", apperr.PublicMessage(err))
}

func TestRequestErrorMessageFallbacks(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"json message field", 400, `{"message":"Name is required"}`, "Name is required"},
		{"json error field", 422, `{"error":"duplicate sku"}`, "duplicate sku"},
		{"plain text body", 400, "bad request body", "bad request body"},
		{"html body", 500, "<html><body>boom</body></html>", "HTTP error 500"},
		{"empty body", 503, "", "HTTP error 503"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, testSessions(t, "tok-1"))
			_, err := c.Request(context.Background(), http.MethodGet, "/x", nil)
			require.Error(t, err)

			ae, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, apperr.API, ae.Kind)
			assert.Equal(t, tc.status, ae.Status)
			assert.Equal(t, tc.want, ae.PublicMsg)
		})
	}
}

func TestRequestTransportFailureIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens any more

	c := NewClient(srv.URL, testSessions(t, "tok-1"))
	_, err := c.Request(context.Background(), http.MethodGet, "/api/products", nil)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Network, ae.Kind)
}

func TestURLNormalization(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// Trailing slash on the base and a bare path both normalize.
	c := NewClient(srv.URL+"/", testSessions(t, ""))
	_, err := c.Request(context.Background(), http.MethodGet, "api/products", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/products", gotPath)
}

func TestUploadSendsMultipart(t *testing.T) {
	var gotField, gotName, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		buf := make([]byte, hdr.Size)
		f.Read(buf)
		gotField, gotName, gotContent = "image", hdr.Filename, string(buf)
		w.Write([]byte(`{"success":true,"data":{"url":"https://cdn/x.jpg"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSessions(t, "tok-1"))
	_, err := c.Upload(context.Background(), "/api/upload", "image", "x.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "image", gotField)
	assert.Equal(t, "x.jpg", gotName)
	assert.Equal(t, "jpeg-bytes", gotContent)
}
