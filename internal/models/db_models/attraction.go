package db_models

type Attraction struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	City        string `gorm:"index"` // aswan | luxor
	Category    string // historical | nature | museum | cultural | landmark | religious | activity | market
	Latitude    float64
	Longitude   float64
	Image       string
	OpeningTime string
	ClosingTime string
}

// Hours renders the open-close window handed to the generation context,
// defaulting to the daily scheduling window when the catalog has no times.
func (a *Attraction) Hours() string {
	open := a.OpeningTime
	if open == "" {
		open = "08:00"
	}
	closing := a.ClosingTime
	if closing == "" {
		closing = "20:00"
	}
	return open + "-" + closing
}
