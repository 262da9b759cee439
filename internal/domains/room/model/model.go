package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldQuantity      = "quantity"
	FieldImage         = "image"
	FieldActive        = "active"
)

// Room is a room type, a class of interchangeable rooms within a hotel with a
// fixed total quantity, not one physical room.
type Room struct {
	ID            string  `db:"id"`
	HotelID       string  `db:"hotel_id"`
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	PricePerNight float64 `db:"price_per_night"`
	Quantity      int     `db:"quantity"`
	Image         string  `db:"image"`
	Active        bool    `db:"active"`
	model.Metadata
}
