package dto

import (
	"lodge/internal/domains/amenity/model"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	return model.Amenity{
		ID:   uuid.NewString(),
		Name: c.Name,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name string `db:"name" json:"name" validate:"required,max=100"`
}

type AmenityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity) {
	r.TotalData = len(models)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
