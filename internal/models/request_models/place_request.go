package request_models

type CreatePlaceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Governorate string   `json:"governorate" binding:"required"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Images      []string `json:"images"`
	Description string   `json:"description"`

	Rooms           int     `json:"rooms"`
	PricePerNight   float64 `json:"pricePerNight"`
	Breakfast       bool    `json:"breakfast"`
	Wifi            bool    `json:"wifi"`
	AirConditioning bool    `json:"airConditioning"`

	Cuisine        []string `json:"cuisine"`
	PricePerTable  float64  `json:"pricePerTable"`
	ChairsPerTable int      `json:"chairsPerTable"`
}

type CreateAttractionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Image       string  `json:"image"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
}

type SearchAttractionsRequest struct {
	Query string `json:"query" binding:"required"`
	City  string `json:"city"`
}
