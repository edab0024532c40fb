package blob

import (
	"context"
	"fmt"
	"time"
)

// Store abstracts the upload target. Real object storage is out of scope;
// the API only depends on getting a servable url back.
type Store interface {
	StoreFile(ctx context.Context, data []byte, originalName string) (string, error)
}

// MockStore satisfies Store without persisting anything. It returns the
// deterministic path a real implementation would serve the file under.
type MockStore struct {
	basePath string
	now      func() time.Time
}

// NewMockStore builds a MockStore rooting urls at basePath.
func NewMockStore(basePath string) *MockStore {
	if basePath == "" {
		basePath = "uploads"
	}
	return &MockStore{
		basePath: basePath,
		now:      time.Now,
	}
}

// StoreFile returns "/<base>/<unix-ts>_<name>" without writing the bytes
// anywhere. TODO: replace with an S3-backed implementation once a bucket
// is provisioned.
func (s *MockStore) StoreFile(_ context.Context, _ []byte, originalName string) (string, error) {
	return fmt.Sprintf("/%s/%d_%s", s.basePath, s.now().Unix(), originalName), nil
}

var _ Store = (*MockStore)(nil)
