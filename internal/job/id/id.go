// Package id provides unique identifier generation for job postings.
package id

import "github.com/google/uuid"

// Generate creates a new unique job ID.
// Format: RFC 4122 version 4 UUID
// Example: 0b7e9a4c-5c1e-4c4f-9d3a-2f0f1f6c7e21
func Generate() string {
	return uuid.NewString()
}

// Valid reports whether s is a well-formed job ID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
