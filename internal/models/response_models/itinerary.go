package response_models

// ScheduleItem is one scheduled stop in a day. Items that resolved against the
// catalog carry authoritative descriptive fields; unresolved items keep only
// what the generator produced.
type ScheduleItem struct {
	Time        string   `json:"time"`
	Type        string   `json:"type"` // attraction | restaurant
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
	Price       *float64 `json:"price,omitempty"`  // per table, restaurants only
	Tables      *int     `json:"tables,omitempty"` // restaurants only
}

type DaySchedule struct {
	Date     string         `json:"date"`
	Schedule []ScheduleItem `json:"schedule"`
}

type GuestHouseSuggestion struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price,omitempty"`
	Image     string  `json:"image,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rooms     int     `json:"rooms"`
}

type ItinerarySuggest struct {
	GuestHouses []GuestHouseSuggestion `json:"guestHouses"`
}

type Itinerary struct {
	Days    []DaySchedule    `json:"days"`
	Suggest ItinerarySuggest `json:"suggest"`
}
