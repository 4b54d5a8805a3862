package interfaces

import (
	"context"
	"io"
)

// IObjectStorage uploads issue photos and voice notes and returns their URL.
type IObjectStorage interface {
	Upload(ctx context.Context, path string, contentType string, body io.Reader, size int64) (string, error)
}
