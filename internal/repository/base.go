// Package repository implements the data access layer for the application.
package repository

import (
	"strings"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
// Covers PostgreSQL (SQLSTATE 23505) and SQLite (used by the test suite).
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
