package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "non-empty", value: "Home", valid: true},
		{name: "surrounded by spaces", value: "  Home ", valid: true},
		{name: "empty", value: "", valid: false},
		{name: "whitespace only", value: " \t\n", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.Required("ssid", tt.value)
			assert.Equal(t, tt.valid, rule.Check())
			assert.Equal(t, "ssid", rule.Error.Field)
			assert.Equal(t, "field is required", rule.Error.Message)
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "has at sign", value: "a@b.com", valid: true},
		{name: "only at sign", value: "@", valid: true},
		{name: "missing at sign", value: "ab.com", valid: false},
		{name: "empty", value: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.Contains("address", tt.value, "@")
			assert.Equal(t, tt.valid, rule.Check())
			assert.Equal(t, `must contain "@"`, rule.Error.Message)
		})
	}
}
