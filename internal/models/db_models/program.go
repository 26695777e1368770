package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Program is a finalized itinerary a user chose to keep. The generated plan is
// stored as the exact JSON document returned to the caller.
type Program struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	Destination string
	Budget      float64
	CheckIn     string
	CheckOut    string
	Interests   pq.StringArray `gorm:"type:text[]"`
	Plan        []byte         `gorm:"type:jsonb"`
}
