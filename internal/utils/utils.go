// Package utils provides utility functions and types shared by the tool
//
//nolint:revive // utils is a common pattern for internal utilities
package utils

import (
	"github.com/google/uuid"
)

// GenerateRunID creates a random identifier that tags all log entries of
// one scan run
func GenerateRunID() string {
	return uuid.New().String()
}
