// Package media provides the blob-bucket implementation of the hosted-media
// collaborator.
package media

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // Local bucket driver for development.
	"gocloud.dev/gcerrors"

	"github.com/khaledhussein957/my-websote-sub000/config"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"
	"github.com/khaledhussein957/my-websote-sub000/internal/errors"
)

// blobService stores uploaded files in a gocloud blob bucket and serves them
// from a configured public base URL.
type blobService struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its shutdown hook.
func New(ctx context.Context, params Params) (service.MediaService, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &blobService{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(params.Config.Media.PublicBaseURL, "/"),
		logger:  params.Logger,
	}, nil
}

// Upload stores the file under a generated key and returns its public URL.
func (s *blobService) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := uuid.New().String() + path.Ext(filename)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write media content")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media upload")
	}

	s.logger.Debug("Media uploaded", slog.String("key", key))

	return s.baseURL + "/" + key, nil
}

// Delete removes a previously uploaded file by its public URL. URLs outside
// the bucket's base and already-deleted keys are a no-op success.
func (s *blobService) Delete(ctx context.Context, fileURL string) error {
	key, ok := strings.CutPrefix(fileURL, s.baseURL+"/")
	if !ok || key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete media")
	}

	return nil
}
