package dto

import (
	"fmt"
	"time"

	"lodge/internal/domains/booking/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	DateFrom string `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to"   validate:"required,datetime=2006-01-02"`
}

// ParseDates resolves the request's calendar dates. Formats already passed
// validation, so a parse failure here still maps to a 422.
func (c *CreateBookingRequest) ParseDates() (from, to time.Time, err error) {
	from, err = timezone.Parse(constant.DateOnlyFormat, c.DateFrom)
	if err != nil {
		return from, to, failure.UnprocessableEntity(fmt.Sprintf("invalid date_from: %q", c.DateFrom)) //nolint:wrapcheck
	}

	to, err = timezone.Parse(constant.DateOnlyFormat, c.DateTo)
	if err != nil {
		return from, to, failure.UnprocessableEntity(fmt.Sprintf("invalid date_to: %q", c.DateTo)) //nolint:wrapcheck
	}

	return from, to, nil
}

func (c *CreateBookingRequest) ToModel(user string, room roomModel.Room, from, to time.Time) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        room.ID,
		UserID:        user,
		DateFrom:      from,
		DateTo:        to,
		PricePerNight: room.PricePerNight,
		Status:        model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	UserID        string  `json:"user_id"`
	DateFrom      string  `json:"date_from"`
	DateTo        string  `json:"date_to"`
	PricePerNight float64 `json:"price_per_night"`
	TotalNights   int     `json:"total_nights"`
	TotalCost     float64 `json:"total_cost"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.DateFrom = model.DateFrom.Format(constant.DateOnlyFormat)
	r.DateTo = model.DateTo.Format(constant.DateOnlyFormat)
	r.PricePerNight = model.PricePerNight
	r.TotalNights = model.TotalNights()
	r.TotalCost = model.TotalCost()
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
