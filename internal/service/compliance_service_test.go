package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutOfRange(t *testing.T) {
	tests := []struct {
		location string
		celsius  float64
		want     bool
	}{
		{"walk-in", 3.5, false},
		{"walk-in", 0, false},
		{"walk-in", 5, false},
		{"walk-in", 6.1, true},
		{"walk-in", -1, true},
		{"freezer", -18, false},
		{"freezer", -10, true},
		{"hot-hold", 65, false},
		{"hot-hold", 60, true},
		// 未知存放点不自动判定，留给经理核查
		{"prep-bench", 40, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutOfRange(tt.location, tt.celsius),
			"%s at %.1f°C", tt.location, tt.celsius)
	}
}
