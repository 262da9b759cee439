package model

import (
	"time"

	gDto "lodge/shared/dto"
	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldUserID        = "user_id"
	FieldDateFrom      = "date_from"
	FieldDateTo        = "date_to"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"

	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking reserves one unit of a room type for the half-open interval
// [DateFrom, DateTo). PricePerNight is copied from the room at creation time
// so later price changes do not rewrite history.
type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	UserID        string    `db:"user_id"`
	DateFrom      time.Time `db:"date_from"`
	DateTo        time.Time `db:"date_to"`
	PricePerNight float64   `db:"price_per_night"`
	Status        string    `db:"status"`
	model.Metadata
}

// TotalNights returns the number of nights covered by the half-open stay.
func (b *Booking) TotalNights() int {
	return int(b.DateTo.Sub(b.DateFrom).Hours() / 24)
}

// TotalCost is the copied nightly price times the number of nights.
func (b *Booking) TotalCost() float64 {
	return b.PricePerNight * float64(b.TotalNights())
}

// OverlapFilter matches confirmed bookings whose half-open stay intersects
// [from, to): date_from < to AND date_to > from. Bookings that merely touch
// at a checkout boundary do not match.
func OverlapFilter(from, to time.Time, roomIDs ...string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    StatusConfirmed,
			Table:    TableName,
		},
		gDto.Filter{
			ArgName:  "query_to",
			Field:    FieldDateFrom,
			Operator: gDto.FilterOperatorLess,
			Value:    to,
			Table:    TableName,
		},
		gDto.Filter{
			ArgName:  "query_from",
			Field:    FieldDateTo,
			Operator: gDto.FilterOperatorGreater,
			Value:    from,
			Table:    TableName,
		},
	}

	switch len(roomIDs) {
	case 0:
	case 1:
		filters = append(filters, gDto.Filter{
			Field:    FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomIDs[0],
			Table:    TableName,
		})
	default:
		filters = append(filters, gDto.Filter{
			Field:    FieldRoomID,
			Operator: gDto.FilterOperatorIn,
			Value:    roomIDs,
			Table:    TableName,
		})
	}

	return gDto.FilterGroup{Filters: filters}
}
