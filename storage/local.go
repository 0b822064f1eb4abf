package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local stores objects as files under a single directory. URLs are
// served by the HTTP server's static route under /uploads.
type Local struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewLocal(dir, baseURL string, maxBytes int64) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &Local{
		dir:      dir,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

func (l *Local) Upload(ctx context.Context, data []byte, contentType string) (*Asset, error) {
	ext, err := checkUpload(data, contentType, l.maxBytes)
	if err != nil {
		return nil, err
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &Asset{
		URL: l.baseURL + "/uploads/" + name,
		Key: name,
	}, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	// Keys are bare file names; refuse anything that escapes the dir.
	if key != filepath.Base(key) {
		return fmt.Errorf("invalid object key: %q", key)
	}

	err := os.Remove(filepath.Join(l.dir, key))
	if os.IsNotExist(err) {
		log.Printf("Delete: object %s already absent", key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
