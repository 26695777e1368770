package services

// Occupancy formulas shared by the itinerary reconciler and the booking
// lifecycle, so AI-suggested counts and booking-side capacity checks agree.

// TablesNeeded seats one table per 5 travelers.
func TablesNeeded(totalTravelers int) int {
	if totalTravelers <= 0 {
		return 1
	}
	return (totalTravelers + 4) / 5
}

// RoomsNeeded pairs children into shared half-occupancy before pairing
// everyone into rooms of two, never suggesting fewer than one room.
func RoomsNeeded(adults, children int) int {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}
	occupants := adults + (children+1)/2
	rooms := (occupants + 1) / 2
	if rooms < 1 {
		rooms = 1
	}
	return rooms
}
