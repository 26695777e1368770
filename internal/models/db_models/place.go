package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	PlaceTypeGuestHouse = "guest_house"
	PlaceTypeRestaurant = "restaurant"
)

type Place struct {
	BaseModel
	Name        string `gorm:"not null"`
	Type        string `gorm:"not null"` // guest_house | restaurant
	Address     string
	Governorate string `gorm:"index"` // aswan | luxor
	Latitude    float64
	Longitude   float64
	Images      pq.StringArray `gorm:"type:text[]"`
	Description string         `gorm:"type:text"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid"`

	// Guest house fields
	Rooms           int
	PricePerNight   float64
	Breakfast       bool
	Wifi            bool
	AirConditioning bool

	// Restaurant fields
	Cuisine        pq.StringArray `gorm:"type:text[]"`
	PricePerTable  float64
	ChairsPerTable int

	IsAvailable bool `gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:PlaceID"`
}

// ContextPrice is the single price the generation context exposes for a place:
// nightly rate for guest houses, per-table rate for restaurants, 0 when unset.
func (p *Place) ContextPrice() float64 {
	if p.PricePerNight > 0 {
		return p.PricePerNight
	}
	return p.PricePerTable
}

func (p *Place) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// AllocateRooms applies the guest-house capacity rule: the requested count must
// not exceed the remaining rooms, and availability always mirrors rooms > 0.
// Callers must hold a row lock on the place while invoking this.
func (p *Place) AllocateRooms(count int) bool {
	if count <= 0 || count > p.Rooms {
		return false
	}
	p.Rooms -= count
	p.IsAvailable = p.Rooms > 0
	return true
}

// ReleaseRooms restores rooms freed by a checkout or cancellation.
// Availability is recomputed from the new count, never forced true.
func (p *Place) ReleaseRooms(count int) {
	if count <= 0 {
		return
	}
	p.Rooms += count
	p.IsAvailable = p.Rooms > 0
}
