package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Alice.Baker@Example.COM", "alice.baker@example.com"},
		{"trims whitespace", "  alice@example.com  ", "alice@example.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEmail(tt.input))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare 10 digits gets US prefix", "5551234567", "+15551234567"},
		{"formatted US number", "(555) 123-4567", "+15551234567"},
		{"US number with dashes", "555-123-4567", "+15551234567"},
		{"already E.164", "+15551234567", "+15551234567"},
		{"international with plus", "+447911123456", "+447911123456"},
		{"11 digits without plus", "15551234567", "+15551234567"},
		{"empty", "", ""},
		{"no digits", "ext.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}
