package dto

import (
	"mime/multipart"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name          string                `json:"name"            validate:"required,max=100"`
	Description   string                `json:"description"     validate:"omitempty,max=500"`
	PricePerNight float64               `json:"price_per_night" validate:"required,gt=0"`
	Quantity      int                   `json:"quantity"        validate:"required,min=1"`
	FacilityIDs   []string              `json:"facility_ids"    validate:"omitempty,dive,uuid"`
	AmenityIDs    []string              `json:"amenity_ids"     validate:"omitempty,dive,uuid"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `json:"active"          validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(hotelID, user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:            uuid.NewString(),
		HotelID:       hotelID,
		Name:          c.Name,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		Quantity:      c.Quantity,
		Image:         imageURL,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name          string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Description   string                `db:"description"     json:"description"     validate:"omitempty,max=500"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	Quantity      *int                  `db:"quantity"        json:"quantity"        validate:"omitempty,min=1"`
	FacilityIDs   []string              `json:"facility_ids"  validate:"omitempty,dive,uuid"`
	AmenityIDs    []string              `json:"amenity_ids"   validate:"omitempty,dive,uuid"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `db:"active"          json:"active"          validate:"omitempty"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night"`
	Quantity      int      `json:"quantity"`
	Image         string   `json:"image"`
	Active        bool     `json:"active"`
	Facilities    []string `json:"facilities,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.Quantity = model.Quantity
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomAvailabilityResponse carries how many units of the room type are left
// for the queried date range. Without a range RoomsLeft equals Quantity.
type RoomAvailabilityResponse struct {
	RoomResponse
	RoomsLeft int `json:"rooms_left"`
}

type SearchRoomsResponse struct {
	Rooms     []RoomAvailabilityResponse `json:"rooms"`
	TotalData int                        `json:"total_data"`
}

func (r *SearchRoomsResponse) FromModels(models []model.Room, remaining map[string]int) {
	r.Rooms = make([]RoomAvailabilityResponse, 0, len(models))
	for _, mod := range models {
		left, ok := remaining[mod.ID]
		if !ok {
			continue
		}

		var item RoomAvailabilityResponse
		item.FromModel(mod)
		item.RoomsLeft = left
		r.Rooms = append(r.Rooms, item)
	}

	r.TotalData = len(r.Rooms)
}
