package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/s3"
	"lodge/internal/domains/availability"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepository "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/hotel/model"
	"lodge/internal/domains/hotel/model/dto"
	"lodge/internal/domains/hotel/repository"
	roomModel "lodge/internal/domains/room/model"
	roomDto "lodge/internal/domains/room/model/dto"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
	cacheCountHotel  = "hotel:count"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, dateRange *gDto.DateRange) (dto.SearchHotelsResponse, error)
}

type serviceImpl struct {
	repo        repository.Hotel
	roomRepo    roomRepository.Room
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(
	repo repository.Hotel,
	roomRepo roomRepository.Room,
	bookingRepo bookingRepository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Hotel {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		bucketName := s.cfg.External.S3.BucketName
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

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentHotel, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel existence")

		return err
	}

	if currentHotel.ID == constant.Empty {
		log.Error().Msg("hotel not found")

		return failure.NotFound("hotel not found")
	}

	return s.updateInternal(ctx, req, currentHotel, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateHotelRequest, currentHotel model.Hotel, user string, filter gDto.FilterGroup) error {
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

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	if imageURL != constant.Empty && currentHotel.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentHotel.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, currentHotel.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	hotel, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if hotel.ID == constant.Empty {
		log.Error().Msg("hotel not found")

		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)

		if hotel.Image != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			objectName := s.s3.GetObjectNameFromURL(bucketName, hotel.Image)
			if objectName != constant.Empty {
				_ = s.s3.DeleteFile(c, bucketName, model.EntityName, objectName)
			}
		}
	}()

	return nil
}

// Search lists hotels matching the filters. When a date range is given, only
// hotels with at least one room type that still has units left over the whole
// range are returned, each carrying its available room types. Pagination runs
// after the availability filter, so every page is a full page of bookable
// hotels and TotalData counts all of them. Results are not cached; ranges
// make the key space unbounded and staleness here means offering a room that
// is already gone.
func (s *serviceImpl) Search(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, dateRange *gDto.DateRange) (res dto.SearchHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotels, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: req.SortBy, SortDir: req.SortDir}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search hotels")

		return res, fmt.Errorf("failed to search hotels: %w", err)
	}

	res.Hotels = []dto.HotelAvailabilityResponse{}
	if len(hotels) == 0 {
		return res, nil
	}

	hotelIDs := make([]string, len(hotels))
	for i, hotel := range hotels {
		hotelIDs[i] = hotel.ID
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldHotelID,
				Operator: gDto.FilterOperatorIn,
				Value:    hotelIDs,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    roomModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for hotel search")

		return res, fmt.Errorf("failed to get rooms for hotel search: %w", err)
	}

	remaining, err := s.remainingByRoom(ctx, rooms, dateRange)
	if err != nil {
		return res, err
	}

	roomsByHotel := make(map[string][]roomDto.RoomAvailabilityResponse)
	for _, room := range rooms {
		left, ok := remaining[room.ID]
		if !ok {
			continue
		}

		var item roomDto.RoomAvailabilityResponse
		item.FromModel(room)
		item.RoomsLeft = left
		roomsByHotel[room.HotelID] = append(roomsByHotel[room.HotelID], item)
	}

	available := make([]dto.HotelAvailabilityResponse, 0, len(hotels))
	for _, hotel := range hotels {
		hotelRooms := roomsByHotel[hotel.ID]
		if dateRange != nil && len(hotelRooms) == 0 {
			continue
		}

		var item dto.HotelAvailabilityResponse
		item.FromModel(hotel)
		item.Rooms = hotelRooms
		available = append(available, item)
	}

	res.TotalData = len(available)
	res.Hotels = pageOf(available, req.Page, req.Limit)

	return res, nil
}

// pageOf slices one page out of the availability-filtered hotels. Without
// paging params the whole set is returned.
func pageOf(hotels []dto.HotelAvailabilityResponse, page, limit int) []dto.HotelAvailabilityResponse {
	if page <= 0 || limit <= 0 {
		return hotels
	}

	offset := (page - 1) * limit
	if offset >= len(hotels) {
		return []dto.HotelAvailabilityResponse{}
	}

	end := min(offset+limit, len(hotels))

	return hotels[offset:end]
}

// remainingByRoom maps each room type to the units left for the range. Without
// a range every room type counts its full quantity.
func (s *serviceImpl) remainingByRoom(ctx context.Context, rooms []roomModel.Room, dateRange *gDto.DateRange) (map[string]int, error) {
	remaining := make(map[string]int, len(rooms))

	if dateRange == nil {
		for _, room := range rooms {
			remaining[room.ID] = room.Quantity
		}

		return remaining, nil
	}

	if len(rooms) == 0 {
		return remaining, nil
	}

	roomIDs := make([]string, len(rooms))
	roomTypes := make([]availability.RoomType, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
		roomTypes[i] = availability.RoomType{ID: room.ID, Quantity: room.Quantity}
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingModel.OverlapFilter(dateRange.From, dateRange.To, roomIDs...))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for hotel search")

		return nil, fmt.Errorf("failed to get bookings for hotel search: %w", err)
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
			return nil, failure.UnprocessableEntity(err.Error()) // nolint:wrapcheck
		}

		return nil, fmt.Errorf("failed to compute availability: %w", err)
	}

	return availability.SelectAvailable(computed), nil
}
