// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// MockDir is the directory holding recorded collaborator replies, relative to the project root.
const MockDir = "docs/response-mock"

// ProjectRoot returns the absolute path of the module root.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// MockPath returns the absolute path of a recorded reply in the docs/response-mock directory.
func MockPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(ProjectRoot(t), MockDir, filename)
}

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(MockPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// MustDecimal parses a decimal literal.
// It fails the test if parsing fails.
func MustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("Failed to parse decimal %s: %v", s, err)
	}
	return d
}

// NullDecimal returns a valid NullDecimal holding s.
func NullDecimal(t *testing.T, s string) decimal.NullDecimal {
	t.Helper()
	return decimal.NewNullDecimal(MustDecimal(t, s))
}

// AssertDecimal compares amounts by value, so "1100" equals "1100.00".
func AssertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) bool {
	t.Helper()
	expected := MustDecimal(t, want)
	if expected.Equal(got) {
		return true
	}
	return assert.Fail(t, "decimal mismatch: expected "+expected.String()+", got "+got.String(), msgAndArgs...)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
