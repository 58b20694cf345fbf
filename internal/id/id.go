package id

import "github.com/google/uuid"

// Generate creates a unique id for an authored question.
func Generate() string {
	return uuid.NewString()
}
