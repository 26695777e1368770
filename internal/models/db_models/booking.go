package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingTypeGuestHouse = "guest_house"
	BookingTypeRestaurant = "restaurant"

	BookingStatusActive     = "active"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

type Booking struct {
	BaseModel
	PlaceID     uuid.UUID `gorm:"type:uuid;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	AdminID     uuid.UUID `gorm:"type:uuid"` // owner of the booked place
	BookingType string    `gorm:"not null"`  // guest_house | restaurant

	// Guest house bookings
	CheckIn       *time.Time
	CheckOut      *time.Time
	NumberOfRooms int
	Adults        int
	Children      int

	// Restaurant bookings
	Date           *time.Time
	Time           string
	NumberOfTables int
	NumberOfGuests int

	TotalPrice float64
	Status     string `gorm:"default:active"`

	Place Place `gorm:"foreignKey:PlaceID"`
}
