package facility

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/facility/model/dto"
	"lodge/internal/domains/facility/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/facilities", func(r chi.Router) {
		r.Post("/", handler.CreateFacility)
		r.Get("/", handler.GetFacilities)
		r.Get("/{id}", handler.GetFacilityByID)
		r.Patch("/{id}", handler.UpdateFacility)
		r.Delete("/{id}", handler.DeleteFacility)
	})
}

// CreateFacility handles the creation of a new facility.
// @Summary Create a new facility
// @Description Create a new room facility with the provided name.
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Create Facility Request"
// @Success 201 {object} response.Message "Facility created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities [post]
// @Security BearerAuth
func (handler *Handler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFacility")
	defer scope.End()

	req := dto.CreateFacilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility created successfully")

	response.WithMessage(w, http.StatusCreated, "Facility created successfully")
}

// GetFacilities retrieves the facility catalog.
// @Summary Get all facilities
// @Description Retrieve the full facility catalog sorted by name.
// @Tags Facility
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse] "List of facilities"
// @Failure 500 {object} response.Error
// @Router /v1/facilities [get]
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	facilities, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facilities retrieved successfully")

	response.WithJSON(w, http.StatusOK, facilities)
}

// GetFacilityByID retrieves a facility by its ID.
// @Summary Get a facility by ID
// @Description Retrieve a facility by its unique identifier.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[dto.FacilityResponse] "Facility details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	facility, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facility by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility retrieved successfully")

	response.WithJSON(w, http.StatusOK, facility)
}

// UpdateFacility updates an existing facility by its ID.
// @Summary Update a facility by ID
// @Description Update the name of an existing facility.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Param request body dto.UpdateFacilityRequest true "Update Facility Request"
// @Success 200 {object} response.Message "Facility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFacility")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFacilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility updated successfully")

	response.WithMessage(w, http.StatusOK, "Facility updated successfully")
}

// DeleteFacility deletes a facility by its ID.
// @Summary Delete a facility by ID
// @Description Delete a facility using its unique identifier. Rooms linked to the facility lose the link.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Message "Facility deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFacility")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete facility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facility deleted successfully")

	response.WithMessage(w, http.StatusOK, "Facility deleted successfully")
}
