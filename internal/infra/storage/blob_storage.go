// Package storage uploads admin assets to object storage through gocloud blob.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tkndbj/nar24admin-sub002/config"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved from the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StorageParams holds dependencies for the blob storage service, injected by Fx.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params StorageParams) (service.StorageService, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing storage bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the bytes under the object path and returns the public URL.
func (s *blobStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, path, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", path)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, path), nil
}
