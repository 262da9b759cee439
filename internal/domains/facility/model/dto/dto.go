package dto

import (
	"lodge/internal/domains/facility/model"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateFacilityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (c *CreateFacilityRequest) ToModel(user string) model.Facility {
	return model.Facility{
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

type UpdateFacilityRequest struct {
	Name string `db:"name" json:"name" validate:"required,max=100"`
}

type FacilityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.Name = model.Name
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility) {
	r.TotalData = len(models)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
