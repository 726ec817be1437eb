package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceUpdateServiceFlag(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"int one", 1, true},
		{"int zero", 0, false},
		{"int other", 2, false},
		{"int64 one", int64(1), true},
		{"float64 one", float64(1), true},
		{"float64 fraction", 0.5, false},
		{"string true", "true", true},
		{"string TRUE", "TRUE", true},
		{"string one", "1", true},
		{"string yes", "yes", true},
		{"string yes padded", "  Yes ", true},
		{"string no", "no", false},
		{"string zero", "0", false},
		{"string garbage", "maybe", false},
		{"string empty", "", false},
		{"nil", nil, false},
		{"unsupported type", []string{"true"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceUpdateServiceFlag(tc.raw))
		})
	}
}
