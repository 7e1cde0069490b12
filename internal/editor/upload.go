package editor

import (
	"context"
	"io"
	"sync"

	"github.com/Muhammad-true/mm-shop-admin/internal/uploader"
)

// FileInput is one picked file: name, size, mime type, content.
type FileInput struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// UploadResult reports one file's outcome.
type UploadResult struct {
	Filename string
	URL      string
	Err      error
}

// UploadImages uploads every picked file for the variation at index.
// Files upload independently and concurrently; one failure neither
// blocks nor rolls back the rest. Successful URLs are appended to the
// draft in selection order, and the per-file results are returned in the
// same order.
func (s *EditSession) UploadImages(ctx context.Context, up uploader.Uploader, index int, files []FileInput) ([]UploadResult, error) {
	s.mu.Lock()
	if _, err := s.draftAt(index); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	results := make([]UploadResult, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f FileInput) {
			defer wg.Done()
			res, err := up.Put(ctx, f.Content, uploader.PutInput{
				Filename:    f.Name,
				ContentType: f.ContentType,
				Size:        f.Size,
			})
			results[i] = UploadResult{Filename: f.Name, URL: res.URL, Err: err}
		}(i, f)
	}
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftAt(index)
	if err != nil {
		// The draft vanished while uploads ran (row removed); report the
		// results but attach nothing.
		return results, err
	}
	for _, r := range results {
		if r.Err == nil && r.URL != "" {
			d.ImageURLs = append(d.ImageURLs, r.URL)
		}
	}
	return results, nil
}

// RemoveImage detaches one uploaded image from the variation at index by
// filename match on the URL tail.
func (s *EditSession) RemoveImage(index int, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draftAt(index)
	if err != nil {
		return err
	}
	out := d.ImageURLs[:0]
	for _, u := range d.ImageURLs {
		if u != url {
			out = append(out, u)
		}
	}
	d.ImageURLs = out
	return nil
}
