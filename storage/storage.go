// Package storage moves project image binaries into durable storage
// and hands back references usable for serving and later deletion.
package storage

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMediaType rejects uploads outside the image allow-list.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrPayloadTooLarge rejects uploads above the configured ceiling.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Asset is a durable reference to a stored object. URL is fetchable
// immediately after Upload returns; Key authorizes deletion and stays
// stable until Delete is called with it.
type Asset struct {
	URL string
	Key string
}

// Store uploads and deletes image objects. Implementations do not
// retry failed calls; a failure is surfaced once to the caller.
type Store interface {
	Upload(ctx context.Context, data []byte, contentType string) (*Asset, error)
	// Delete removes the object for key. Deleting an already-absent
	// key is not an error.
	Delete(ctx context.Context, key string) error
}

// extensions maps allowed content types to file extensions. The map
// doubles as the upload allow-list.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// checkUpload enforces the shared upload constraints and returns the
// extension for the content type.
func checkUpload(data []byte, contentType string, maxBytes int64) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}

	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrPayloadTooLarge, len(data), maxBytes)
	}

	return ext, nil
}
