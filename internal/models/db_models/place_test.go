package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateRooms(t *testing.T) {
	p := Place{Rooms: 3, IsAvailable: true}

	assert.True(t, p.AllocateRooms(2))
	assert.Equal(t, 1, p.Rooms)
	assert.True(t, p.IsAvailable)

	assert.True(t, p.AllocateRooms(1))
	assert.Equal(t, 0, p.Rooms)
	assert.False(t, p.IsAvailable)

	assert.False(t, p.AllocateRooms(1))
	assert.Equal(t, 0, p.Rooms)
}

func TestAllocateRoomsRejectsBadCounts(t *testing.T) {
	p := Place{Rooms: 3, IsAvailable: true}

	assert.False(t, p.AllocateRooms(0))
	assert.False(t, p.AllocateRooms(-1))
	assert.False(t, p.AllocateRooms(4))
	assert.Equal(t, 3, p.Rooms)
}

func TestReleaseRoomsRecomputesAvailability(t *testing.T) {
	p := Place{Rooms: 0, IsAvailable: false}

	p.ReleaseRooms(2)
	assert.Equal(t, 2, p.Rooms)
	assert.True(t, p.IsAvailable)

	p.ReleaseRooms(0)
	assert.Equal(t, 2, p.Rooms)
}

func TestContextPrice(t *testing.T) {
	assert.Equal(t, 400.0, (&Place{PricePerNight: 400}).ContextPrice())
	assert.Equal(t, 150.0, (&Place{PricePerTable: 150}).ContextPrice())
	assert.Equal(t, 0.0, (&Place{}).ContextPrice())
}

func TestAttractionHours(t *testing.T) {
	assert.Equal(t, "08:00-20:00", (&Attraction{}).Hours())
	assert.Equal(t, "09:30-17:00", (&Attraction{OpeningTime: "09:30", ClosingTime: "17:00"}).Hours())
	assert.Equal(t, "09:30-20:00", (&Attraction{OpeningTime: "09:30"}).Hours())
}
