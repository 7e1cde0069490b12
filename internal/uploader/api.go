package uploader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
)

// API uploads through the mm-shop upload endpoint, so the server owns
// storage and the returned URL.
type API struct {
	client *api.Client
}

func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

func (a *API) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	raw, err := a.client.Upload(ctx, "/api/upload", "image", in.Filename, in.ContentType, r)
	if err != nil {
		return PutResult{}, err
	}

	var res struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}
	if err := api.DecodeObject(raw, &res); err != nil {
		return PutResult{}, err
	}
	return PutResult{Key: res.Filename, URL: res.URL}, nil
}

func (a *API) Delete(ctx context.Context, key string) error {
	_, err := a.client.Request(ctx, http.MethodDelete, "/api/upload/"+key, nil)
	return err
}

func (a *API) String() string { return fmt.Sprintf("api(%s)", "/api/upload") }
