package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesNeeded(t *testing.T) {
	assert.Equal(t, 1, TablesNeeded(0))
	assert.Equal(t, 1, TablesNeeded(1))
	assert.Equal(t, 1, TablesNeeded(5))
	assert.Equal(t, 2, TablesNeeded(6))
	assert.Equal(t, 3, TablesNeeded(12))
}

func TestRoomsNeeded(t *testing.T) {
	tests := []struct {
		name     string
		adults   int
		children int
		want     int
	}{
		{"solo traveler", 1, 0, 1},
		{"default pair", 2, 0, 1},
		{"pair with child", 2, 1, 2},
		{"three adults one child", 3, 1, 2},
		{"three adults two children", 3, 2, 2},
		{"family of six", 4, 4, 3},
		{"no travelers still books a room", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoomsNeeded(tt.adults, tt.children))
		})
	}
}
