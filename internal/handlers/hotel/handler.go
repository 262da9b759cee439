package hotel

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/hotel/model"
	"lodge/internal/domains/hotel/model/dto"
	"lodge/internal/domains/hotel/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the hotel routes. The room handler mounts the nested
// /{hotel_id}/rooms subtree on the same router.
func (handler *Handler) Router(r chi.Router) {
	r.Post("/", handler.CreateHotel)
	r.Get("/", handler.GetHotels)
	r.Get("/search", handler.SearchHotels)
	r.Get("/{hotel_id}", handler.GetHotelByID)
	r.Patch("/{hotel_id}", handler.UpdateHotel)
	r.Delete("/{hotel_id}", handler.DeleteHotel)
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a new hotel
// @Description Create a new hotel with the provided details.
// @Tags Hotel
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Hotel name"
// @Param location formData string true "Hotel location"
// @Param description formData string false "Hotel description"
// @Param active formData boolean false "Hotel active status"
// @Param image formData file false "Hotel image"
// @Success 201 {object} response.Message "Hotel created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateHotelRequest{
		Name:        r.FormValue("name"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Hotel created successfully")
}

// GetHotels retrieves all hotels based on query parameters.
// @Summary Get all hotels
// @Description Retrieve all hotels with optional filtering and pagination.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "List of hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildListFilter(r)

	hotels, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// SearchHotels lists hotels with rooms available for the requested dates.
// @Summary Search hotels by availability
// @Description Search hotels, optionally constrained to a date range. With date_from and date_to, only hotels with at least one available room type are returned, each carrying its available room types and units left.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param date_from query string false "Check-in date (YYYY-MM-DD)"
// @Param date_to query string false "Check-out date (YYYY-MM-DD), exclusive"
// @Success 200 {object} response.Data[dto.SearchHotelsResponse] "Search results"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/search [get]
func (handler *Handler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	var dateRange *gDto.DateRange

	parsed := gDto.DateRange{}
	provided, err := parsed.FromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid date range")

		response.WithError(w, err)

		return
	}

	if provided {
		dateRange = &parsed
	}

	filterGroup := handler.buildListFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	hotels, err := handler.service.Search(ctx, queryParams, filterGroup, dateRange)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotels searched successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID retrieves a hotel by its ID.
// @Summary Get a hotel by ID
// @Description Retrieve a hotel by its unique identifier.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id} [get]
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamHotelID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel updates an existing hotel by its ID.
// @Summary Update a hotel by ID
// @Description Update the details of an existing hotel.
// @Tags Hotel
// @Accept multipart/form-data
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param name formData string false "Hotel name"
// @Param location formData string false "Hotel location"
// @Param description formData string false "Hotel description"
// @Param active formData boolean false "Hotel active status"
// @Param image formData file false "Hotel image"
// @Success 200 {object} response.Message "Hotel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamHotelID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateHotelRequest{
		Name:        r.FormValue("name"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hotel updated successfully")
}

// DeleteHotel deletes a hotel by its ID.
// @Summary Delete a hotel by ID
// @Description Delete a hotel using its unique identifier.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {object} response.Message "Hotel deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamHotelID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hotel deleted successfully")
}

func (handler *Handler) buildListFilter(r *http.Request) gDto.FilterGroup {
	name := r.URL.Query().Get(model.FieldName)
	location := r.URL.Query().Get(model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorLike,
				Value:    location,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
