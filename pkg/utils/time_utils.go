package utils

import "time"

// ISODate is the calendar-date layout used across requests, itineraries and
// the generation prompt.
const ISODate = "2006-01-02"

func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// DaySpan counts the nights between check-in and check-out, which is also the
// number of itinerary days: 2024-03-01 to 2024-03-03 spans 2 days.
// Returns 0 or a negative value when checkOut is not after checkIn.
func DaySpan(checkIn, checkOut time.Time) int {
	span := checkOut.Sub(checkIn)
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// DateRange lists count consecutive calendar dates starting at start.
func DateRange(start time.Time, count int) []string {
	dates := make([]string, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(ISODate))
	}
	return dates
}
