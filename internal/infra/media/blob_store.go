// Package media provides the blob-bucket backed MediaStore used for item
// media uploads.
package media

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Registered bucket schemes. fileblob covers local development; the
	// blob URL in config selects the driver.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

// blobStore implements service.MediaStore on top of a gocloud.dev bucket.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStore opens the configured bucket. It returns a nil MediaStore
// when no bucket is configured; item creation then rejects file uploads.
func NewBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.MediaStore, error) {
	if cfg.Media == nil || cfg.Media.BucketURL == "" {
		logger.Warn("no media bucket configured, file uploads disabled")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.Media.BucketURL)
	}

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Media.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// NewWithBucket wires an already-open bucket; used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.MediaStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the blob and returns the public URL for the stored key.
func (s *blobStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open bucket writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write media blob %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize media blob %s", key)
	}

	s.logger.Debug("media blob stored", slog.String("key", key))

	return s.publicBaseURL + "/" + key, nil
}
