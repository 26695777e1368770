package request_models

type GenerateItineraryRequest struct {
	Destination  string   `json:"destination"`
	Budget       float64  `json:"budget"`
	CheckInDate  string   `json:"checkInDate"`
	CheckOutDate string   `json:"checkOutDate"`
	Interests    []string `json:"interests"`
	Adults       int      `json:"adults"`
	Children     int      `json:"children"`
}
