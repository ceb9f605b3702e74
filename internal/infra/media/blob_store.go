// Package media implements the ImageStore interface on top of a
// gocloud.dev blob bucket, so the same code serves local file buckets in
// development and S3/GCS in production.
package media

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the blob image store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the configured bucket and returns an ImageStore
// that writes uploads under randomized keys.
func NewBlobImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores the image under a random key and returns its public URL.
// The original file name only contributes its extension; user-supplied
// names never become bucket keys.
func (s *blobImageStore) Upload(ctx context.Context, upload *service.ImageUpload) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(upload.FileName))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, upload.Body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image to bucket")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image upload")
	}

	s.logger.Info("Image uploaded",
		slog.String("key", key),
		slog.Int64("size", upload.Size),
	)

	return s.publicBaseURL + "/" + key, nil
}
