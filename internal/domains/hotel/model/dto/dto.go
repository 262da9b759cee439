package dto

import (
	"mime/multipart"

	"lodge/internal/domains/hotel/model"
	roomDto "lodge/internal/domains/room/model/dto"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Location    string                `json:"location"    validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateHotelRequest) ToModel(user string, imageURL string) model.Hotel {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Hotel{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Location:    c.Location,
		Description: c.Description,
		Image:       imageURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Location    string                `db:"location"    json:"location"    validate:"omitempty,max=100"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=500"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type HotelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Description = model.Description
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}

// HotelAvailabilityResponse is a hotel search hit together with the room
// types that still have units left for the queried range.
type HotelAvailabilityResponse struct {
	HotelResponse
	Rooms []roomDto.RoomAvailabilityResponse `json:"rooms,omitempty"`
}

type SearchHotelsResponse struct {
	Hotels    []HotelAvailabilityResponse `json:"hotels"`
	TotalData int                         `json:"total_data"`
}
