package response_models

type PlaceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Governorate string   `json:"governorate"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Images      []string `json:"images"`
	Description string   `json:"description"`

	Rooms         int     `json:"rooms,omitempty"`
	PricePerNight float64 `json:"pricePerNight,omitempty"`

	Cuisine        []string `json:"cuisine,omitempty"`
	PricePerTable  float64  `json:"pricePerTable,omitempty"`
	ChairsPerTable int      `json:"chairsPerTable,omitempty"`

	IsAvailable bool `json:"isAvailable"`
}

type AttractionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Image       string  `json:"image"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
}
