package room

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the room routes under the hotel subtree.
func (handler *Handler) Router(r chi.Router) {
	r.Route("/{hotel_id}/rooms", func(r chi.Router) {
		r.Post("/", handler.CreateRoom)
		r.Get("/", handler.GetRooms)
		r.Get("/search", handler.SearchRooms)
		r.Get("/{id}", handler.GetRoomByID)
		r.Patch("/{id}", handler.UpdateRoom)
		r.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room type in a hotel.
// @Summary Create a new room type
// @Description Create a new room type in the given hotel, optionally linking facilities and amenities.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param name formData string true "Room name"
// @Param description formData string false "Room description"
// @Param price_per_night formData number true "Price per night"
// @Param quantity formData integer true "Number of identical units"
// @Param facility_ids formData []string false "Facility IDs" collectionFormat(multi)
// @Param amenity_ids formData []string false "Amenity IDs" collectionFormat(multi)
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateRoomRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		FacilityIDs: r.Form["facility_ids"],
		AmenityIDs:  r.Form["amenity_ids"],
	}

	if priceStr := r.FormValue("price_per_night"); priceStr != "" {
		price, err := shared.ConvertStringToFloat(priceStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse price_per_night")

			response.WithError(w, failure.BadRequestFromString("price_per_night must be a number"))

			return
		}

		req.PricePerNight = price
	}

	if quantityStr := r.FormValue("quantity"); quantityStr != "" {
		quantity, err := shared.ConvertStringToInt(quantityStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse quantity")

			response.WithError(w, failure.BadRequestFromString("quantity must be an integer"))

			return
		}

		req.Quantity = quantity
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

	if err := handler.service.Create(ctx, hotelID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves the room types of a hotel.
// @Summary Get rooms of a hotel
// @Description Retrieve the room types of a hotel with pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rooms, err := handler.service.GetAll(ctx, hotelID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// SearchRooms lists the hotel's room types with their remaining units.
// @Summary Search available rooms of a hotel
// @Description List the hotel's active room types with the number of units left. With date_from and date_to only room types with at least one free unit for every night of the range are returned.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param date_from query string false "Check-in date (YYYY-MM-DD)"
// @Param date_to query string false "Check-out date (YYYY-MM-DD), exclusive"
// @Success 200 {object} response.Data[dto.SearchRoomsResponse] "Search results"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms/search [get]
func (handler *Handler) SearchRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchRooms")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

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

	rooms, err := handler.service.Search(ctx, hotelID, dateRange)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms searched successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room type by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room type of a hotel, including its facility and amenity names.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)
	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, hotelID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room type by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room type. Supplying facility_ids or amenity_ids replaces the links.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Param name formData string false "Room name"
// @Param description formData string false "Room description"
// @Param price_per_night formData number false "Price per night"
// @Param quantity formData integer false "Number of identical units"
// @Param facility_ids formData []string false "Facility IDs" collectionFormat(multi)
// @Param amenity_ids formData []string false "Amenity IDs" collectionFormat(multi)
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		FacilityIDs: r.Form["facility_ids"],
		AmenityIDs:  r.Form["amenity_ids"],
	}

	if priceStr := r.FormValue("price_per_night"); priceStr != "" {
		price, err := shared.ConvertStringToFloat(priceStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse price_per_night")

			response.WithError(w, failure.BadRequestFromString("price_per_night must be a number"))

			return
		}

		req.PricePerNight = &price
	}

	if quantityStr := r.FormValue("quantity"); quantityStr != "" {
		quantity, err := shared.ConvertStringToInt(quantityStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse quantity")

			response.WithError(w, failure.BadRequestFromString("quantity must be an integer"))

			return
		}

		req.Quantity = &quantity
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

	if err := handler.service.Update(ctx, req, hotelID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room type by its ID.
// @Summary Delete a room by ID
// @Description Delete a room type of a hotel using its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, hotelID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
