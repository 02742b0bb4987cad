package service

import "context"

// StorageService uploads admin assets to object storage.
type StorageService interface {
	// Upload writes the bytes under the given object path and returns the
	// public download URL.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
