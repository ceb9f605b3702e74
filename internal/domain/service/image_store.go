package service

import (
	"context"
	"io"
)

// ImageUpload carries the content and metadata of one uploaded image.
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageStore defines the interface for persisting uploaded media and
// returning a publicly reachable URL for it.
type ImageStore interface {
	// Upload stores the image and returns its public URL.
	Upload(ctx context.Context, upload *ImageUpload) (string, error)
}
