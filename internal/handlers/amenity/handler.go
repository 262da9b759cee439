package amenity

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/amenity/model/dto"
	"lodge/internal/domains/amenity/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Amenity
	otel    otel.Otel
}

func New(service service.Amenity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/amenities", func(r chi.Router) {
		r.Post("/", handler.CreateAmenity)
		r.Get("/", handler.GetAmenities)
		r.Get("/{id}", handler.GetAmenityByID)
		r.Patch("/{id}", handler.UpdateAmenity)
		r.Delete("/{id}", handler.DeleteAmenity)
	})
}

// CreateAmenity handles the creation of a new amenity.
// @Summary Create a new amenity
// @Description Create a new room amenity with the provided name.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param request body dto.CreateAmenityRequest true "Create Amenity Request"
// @Success 201 {object} response.Message "Amenity created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities [post]
// @Security BearerAuth
func (handler *Handler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAmenity")
	defer scope.End()

	req := dto.CreateAmenityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create amenity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenity created successfully")

	response.WithMessage(w, http.StatusCreated, "Amenity created successfully")
}

// GetAmenities retrieves the amenity catalog.
// @Summary Get all amenities
// @Description Retrieve the full amenity catalog sorted by name.
// @Tags Amenity
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse] "List of amenities"
// @Failure 500 {object} response.Error
// @Router /v1/amenities [get]
func (handler *Handler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenities")
	defer scope.End()

	amenities, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenities retrieved successfully")

	response.WithJSON(w, http.StatusOK, amenities)
}

// GetAmenityByID retrieves an amenity by its ID.
// @Summary Get an amenity by ID
// @Description Retrieve an amenity by its unique identifier.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Data[dto.AmenityResponse] "Amenity details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [get]
func (handler *Handler) GetAmenityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	amenity, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenity by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenity retrieved successfully")

	response.WithJSON(w, http.StatusOK, amenity)
}

// UpdateAmenity updates an existing amenity by its ID.
// @Summary Update an amenity by ID
// @Description Update the name of an existing amenity.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Param request body dto.UpdateAmenityRequest true "Update Amenity Request"
// @Success 200 {object} response.Message "Amenity updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAmenity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAmenityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update amenity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenity updated successfully")

	response.WithMessage(w, http.StatusOK, "Amenity updated successfully")
}

// DeleteAmenity deletes an amenity by its ID.
// @Summary Delete an amenity by ID
// @Description Delete an amenity using its unique identifier. Rooms linked to the amenity lose the link.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Message "Amenity deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAmenity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete amenity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenity deleted successfully")

	response.WithMessage(w, http.StatusOK, "Amenity deleted successfully")
}
