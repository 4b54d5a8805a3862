package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"service_inventory/internal/usecase/interfaces"
)

// ObjectStorage keeps uploaded blobs in memory and returns memory:// URLs.
type ObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

var _ interfaces.IObjectStorage = (*ObjectStorage)(nil)

func NewObjectStorage() *ObjectStorage {
	return &ObjectStorage{objects: make(map[string][]byte)}
}

func (s *ObjectStorage) Upload(_ context.Context, path string, _ string, body io.Reader, _ int64) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = buf.Bytes()
	return "memory://" + path, nil
}

func (s *ObjectStorage) Object(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objects[path]
	return b, ok
}
