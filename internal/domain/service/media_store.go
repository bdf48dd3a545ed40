package service

import (
	"context"
	"io"
)

// MediaStore defines the interface for storing uploaded media blobs.
// The gateway only needs a write path; serving is the bucket's concern.
type MediaStore interface {
	// Upload writes the blob under the given key and returns the public URL
	// the Listing service should reference.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
