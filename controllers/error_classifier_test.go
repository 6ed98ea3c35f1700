package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClientError(t *testing.T) {
	clientErrors := []string{
		"User ID is required",
		"Product not found",
		"Insufficient quantity in batch BATCH-1: available 10, requested 100",
		"Batch lot BATCH-1 has expired",
		"Batch lot BATCH-1 is not active",
		"Invalid loading type: X",
		"Quantity must be a positive number",
		"Serial number SN-1 already exists",
		"Batch is not associated with this product",
	}
	for _, msg := range clientErrors {
		assert.True(t, isClientError(errors.New(msg)), msg)
	}

	serverErrors := []string{
		"database is locked",
		"connection refused",
		"sql: transaction has already been committed or rolled back",
	}
	for _, msg := range serverErrors {
		assert.False(t, isClientError(errors.New(msg)), msg)
	}

	assert.False(t, isClientError(nil))
}

func TestParseDocumentDate(t *testing.T) {
	for _, value := range []string{
		"2026-08-15T10:30:00Z",
		"2026-08-15 10:30:00",
		"2026-08-15",
	} {
		parsed, err := parseDocumentDate(value)
		assert.NoError(t, err, value)
		assert.Equal(t, 2026, parsed.Year())
	}

	_, err := parseDocumentDate("15/08/2026")
	assert.Error(t, err)
}
