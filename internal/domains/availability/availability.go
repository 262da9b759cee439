// Package availability computes how many bookable units remain per room type
// for a queried date range. It is a pure library with no I/O; callers load
// room types and bookings from the store and apply the result.
package availability

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when the queried range does not satisfy
// from < to.
var ErrInvalidRange = errors.New("date_from must be strictly before date_to")

// RoomType is one class of interchangeable rooms with a fixed inventory.
type RoomType struct {
	ID       string
	Quantity int
}

// Booking reserves one unit of a room type for the half-open interval
// [DateFrom, DateTo).
type Booking struct {
	RoomTypeID string
	DateFrom   time.Time
	DateTo     time.Time
}

// Overlaps reports whether the half-open intervals [a1, a2) and [b1, b2)
// intersect. The end date is exclusive, so a checkout on day X does not
// conflict with a check-in on day X.
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	return a1.Before(b2) && b1.Before(a2)
}

// Compute returns the remaining bookable quantity per room type for the
// half-open range [from, to). Bookings referencing room types outside the
// given set are ignored. The result covers every room type passed in; the
// value may be negative when the store holds more overlapping bookings than
// the inventory allows, so overbooked inventory stays visible to callers.
func Compute(roomTypes []RoomType, bookings []Booking, from, to time.Time) (map[string]int, error) {
	if !from.Before(to) {
		return nil, ErrInvalidRange
	}

	remaining := make(map[string]int, len(roomTypes))
	for _, roomType := range roomTypes {
		remaining[roomType.ID] = roomType.Quantity
	}

	for _, booking := range bookings {
		if _, inScope := remaining[booking.RoomTypeID]; !inScope {
			continue
		}

		if Overlaps(from, to, booking.DateFrom, booking.DateTo) {
			remaining[booking.RoomTypeID]--
		}
	}

	return remaining, nil
}

// SelectAvailable filters a remaining-count mapping down to the room types
// that still have units left. Kept separate from Compute so the hide
// sold-out rule can change without touching the arithmetic.
func SelectAvailable(remaining map[string]int) map[string]int {
	available := make(map[string]int, len(remaining))

	for roomTypeID, left := range remaining {
		if left > 0 {
			available[roomTypeID] = left
		}
	}

	return available
}
