// Package storage provides destinations for job board snapshots.
// It defines the Storage interface and implementations for local disk and S3.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Static errors for storage operations.
var (
	// ErrS3NotConfigured is returned when S3 storage is created without a bucket or region.
	ErrS3NotConfigured = errors.New("S3 storage is not configured")
	// ErrInvalidKey is returned for keys that are empty or escape the storage root.
	ErrInvalidKey = errors.New("invalid storage key")
)

// Storage writes named objects to a persistent destination.
type Storage interface {
	// Put stores data under key and returns where it was written
	// (a file path or an object URL).
	Put(ctx context.Context, key string, data io.Reader) (location string, err error)
}

// validateKey rejects keys that are empty, absolute, or contain "..".
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return ErrInvalidKey
		}
	}
	return nil
}
