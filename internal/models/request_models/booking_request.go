package request_models

type CreateBookingRequest struct {
	PlaceID     string `json:"place_id" binding:"required"`
	BookingType string `json:"booking_type" binding:"required"`

	// Guest house bookings
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	NumberOfRooms int    `json:"number_of_rooms"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`

	// Restaurant bookings
	Date           string `json:"date"`
	Time           string `json:"time"`
	NumberOfTables int    `json:"number_of_tables"`
	NumberOfGuests int    `json:"number_of_guests"`
}
