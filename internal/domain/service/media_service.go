package service

import (
	"context"
	"io"
)

// MediaService is the hosted-media collaborator used for profile images.
// The contract is upload-returns-URL; failures are surfaced to the caller
// but never corrupt account state.
type MediaService interface {
	// Upload stores the file content under a generated key and returns the
	// public URL it is served from.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Delete removes a previously uploaded file by its public URL. Unknown
	// URLs are a no-op success.
	Delete(ctx context.Context, url string) error
}
