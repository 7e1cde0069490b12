package uploader

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

// Uploader stores one product image and returns its public URL. The
// default driver goes through the mm-shop API; local and s3 exist for
// development and direct-to-bucket setups.
type Uploader interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
