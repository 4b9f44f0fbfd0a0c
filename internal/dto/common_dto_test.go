package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		in         PageRequest
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", PageRequest{}, 1, 10, 0},
		{"negative page", PageRequest{Page: -3, Limit: 20}, 1, 20, 0},
		{"limit clamped", PageRequest{Page: 2, Limit: 500}, 2, 100, 100},
		{"normal paging", PageRequest{Page: 3, Limit: 25}, 3, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
			assert.Equal(t, tt.wantOffset, tt.in.Offset())
		})
	}
}
