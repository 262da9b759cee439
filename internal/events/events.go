// Package events defines the payloads published to Kafka and the worker-side
// handlers that consume them.
package events

// BookingCreatedEvent is published after a booking commits. Consumers use it
// for notifications and reporting; the booking itself is already durable.
type BookingCreatedEvent struct {
	BookingID     string  `json:"booking_id"`
	RoomID        string  `json:"room_id"`
	UserID        string  `json:"user_id"`
	DateFrom      string  `json:"date_from"`
	DateTo        string  `json:"date_to"`
	PricePerNight float64 `json:"price_per_night"`
	TotalNights   int     `json:"total_nights"`
	TotalCost     float64 `json:"total_cost"`
	Status        string  `json:"status"`
}

// ImageResizeEvent asks the worker to produce resized variants of an uploaded
// object. URL points at the original in the bucket.
type ImageResizeEvent struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Entity     string `json:"entity"`
}
