package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/s3"
	amenityRepository "lodge/internal/domains/amenity/repository"
	"lodge/internal/domains/availability"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepository "lodge/internal/domains/booking/repository"
	facilityRepository "lodge/internal/domains/facility/repository"
	hotelModel "lodge/internal/domains/hotel/model"
	hotelRepository "lodge/internal/domains/hotel/repository"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, hotelID string, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, hotelID string, req gDto.QueryParams) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, hotelID, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, hotelID, id string) error
	Delete(ctx context.Context, hotelID, id string) error
	Search(ctx context.Context, hotelID string, dateRange *gDto.DateRange) (dto.SearchRoomsResponse, error)
}

type serviceImpl struct {
	repo         repository.Room
	hotelRepo    hotelRepository.Hotel
	bookingRepo  bookingRepository.Booking
	facilityRepo facilityRepository.Facility
	amenityRepo  amenityRepository.Amenity
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(
	repo repository.Room,
	hotelRepo hotelRepository.Hotel,
	bookingRepo bookingRepository.Booking,
	facilityRepo facilityRepository.Facility,
	amenityRepo amenityRepository.Amenity,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Room {
	return &serviceImpl{
		repo:         repo,
		hotelRepo:    hotelRepo,
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		amenityRepo:  amenityRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, hotelID string, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureHotelExists(ctx, hotelID); err != nil {
		return err
	}

	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	room := req.ToModel(hotelID, user, imageURL)

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin room transaction")

		return fmt.Errorf("failed to begin room transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = sqltx.Rollback()

			if uploadedObjectName != constant.Empty {
				_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
			}
		}
	}()

	if err = s.repo.InsertTx(ctx, sqltx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	if len(req.FacilityIDs) > 0 {
		if err = s.facilityRepo.ReplaceRoomFacilitiesTx(ctx, sqltx, room.ID, req.FacilityIDs); err != nil {
			log.Error().Err(err).Msg("failed to link room facilities")

			return fmt.Errorf("failed to link room facilities: %w", err)
		}
	}

	if len(req.AmenityIDs) > 0 {
		if err = s.amenityRepo.ReplaceRoomAmenitiesTx(ctx, sqltx, room.ID, req.AmenityIDs); err != nil {
			log.Error().Err(err).Msg("failed to link room amenities")

			return fmt.Errorf("failed to link room amenities: %w", err)
		}
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit room transaction")

		return fmt.Errorf("failed to commit room transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, req gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureHotelExists(ctx, hotelID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.HotelID == hotelID {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.getRoomInHotel(ctx, hotelID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	facilities, err := s.facilityRepo.GetByRoom(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room facilities")

		return res, fmt.Errorf("failed to get room facilities: %w", err)
	}

	for _, facility := range facilities {
		res.Facilities = append(res.Facilities, facility.Name)
	}

	amenities, err := s.amenityRepo.GetByRoom(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room amenities")

		return res, fmt.Errorf("failed to get room amenities: %w", err)
	}

	for _, amenity := range amenities {
		res.Amenities = append(res.Amenities, amenity.Name)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, hotelID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	currentRoom, err := s.getRoomInHotel(ctx, hotelID, id)
	if err != nil {
		return err
	}

	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin room transaction")

		return fmt.Errorf("failed to begin room transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = sqltx.Rollback()

			if uploadedObjectName != constant.Empty {
				_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
			}
		}
	}()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.UpdateTx(ctx, sqltx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	// nil means not provided; an empty slice clears the links.
	if req.FacilityIDs != nil {
		if err = s.facilityRepo.ReplaceRoomFacilitiesTx(ctx, sqltx, id, req.FacilityIDs); err != nil {
			log.Error().Err(err).Msg("failed to update room facilities")

			return fmt.Errorf("failed to update room facilities: %w", err)
		}
	}

	if req.AmenityIDs != nil {
		if err = s.amenityRepo.ReplaceRoomAmenitiesTx(ctx, sqltx, id, req.AmenityIDs); err != nil {
			log.Error().Err(err).Msg("failed to update room amenities")

			return fmt.Errorf("failed to update room amenities: %w", err)
		}
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit room transaction")

		return fmt.Errorf("failed to commit room transaction: %w", err)
	}

	if imageURL != constant.Empty && currentRoom.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentRoom.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, hotelID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoomInHotel(ctx, hotelID, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)

		if room.Image != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			objectName := s.s3.GetObjectNameFromURL(bucketName, room.Image)
			if objectName != constant.Empty {
				_ = s.s3.DeleteFile(c, bucketName, model.EntityName, objectName)
			}
		}
	}()

	return nil
}

// Search lists the hotel's active rooms with the units left for the range.
// Room types with nothing left are dropped. Without a range, every active
// room type is returned with its full quantity.
func (s *serviceImpl) Search(ctx context.Context, hotelID string, dateRange *gDto.DateRange) (res dto.SearchRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureHotelExists(ctx, hotelID); err != nil {
		return res, err
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for search")

		return res, fmt.Errorf("failed to get rooms for search: %w", err)
	}

	remaining := make(map[string]int, len(rooms))

	if dateRange == nil {
		for _, room := range rooms {
			remaining[room.ID] = room.Quantity
		}

		res.FromModels(rooms, remaining)

		return res, nil
	}

	roomIDs := make([]string, len(rooms))
	roomTypes := make([]availability.RoomType, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
		roomTypes[i] = availability.RoomType{ID: room.ID, Quantity: room.Quantity}
	}

	var bookings []bookingModel.Booking
	if len(rooms) > 0 {
		bookings, err = s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingModel.OverlapFilter(dateRange.From, dateRange.To, roomIDs...))
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings for search")

			return res, fmt.Errorf("failed to get bookings for search: %w", err)
		}
	}

	stays := make([]availability.Booking, len(bookings))
	for i, booking := range bookings {
		stays[i] = availability.Booking{
			RoomTypeID: booking.RoomID,
			DateFrom:   booking.DateFrom,
			DateTo:     booking.DateTo,
		}
	}

	computed, err := availability.Compute(roomTypes, stays, dateRange.From, dateRange.To)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidRange) {
			return res, failure.UnprocessableEntity(err.Error()) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to compute availability: %w", err)
	}

	res.FromModels(rooms, availability.SelectAvailable(computed))

	return res, nil
}

func (s *serviceImpl) ensureHotelExists(ctx context.Context, hotelID string) error {
	exist, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) getRoomInHotel(ctx context.Context, hotelID, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || room.HotelID != hotelID {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}
