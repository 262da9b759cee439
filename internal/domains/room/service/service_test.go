package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	s3Mocks "lodge/infras/s3/mocks"
	amenityMocks "lodge/internal/domains/amenity/mocks"
	amenityModel "lodge/internal/domains/amenity/model"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	facilityMocks "lodge/internal/domains/facility/mocks"
	facilityModel "lodge/internal/domains/facility/model"
	hotelMocks "lodge/internal/domains/hotel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type roomServiceMocks struct {
	repo     *roomMocks.MockRoom
	hotel    *hotelMocks.MockHotel
	booking  *bookingMocks.MockBooking
	facility *facilityMocks.MockFacility
	amenity  *amenityMocks.MockAmenity
	cache    *cacheMocks.MockRedisCache
}

func newRoomService(t *testing.T) (service.Room, roomServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := roomServiceMocks{
		repo:     roomMocks.NewMockRoom(ctrl),
		hotel:    hotelMocks.NewMockHotel(ctrl),
		booking:  bookingMocks.NewMockBooking(ctrl),
		facility: facilityMocks.NewMockFacility(ctrl),
		amenity:  amenityMocks.NewMockAmenity(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.hotel, m.booking, m.facility, m.amenity, cfg, m.cache, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	return svc, m
}

func TestRoomService_Create(t *testing.T) {
	svc, m := newRoomService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "hotel not found",
			setupMock: func() {
				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "hotel existence check error",
			setupMock: func() {
				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "begin transaction error",
			setupMock: func() {
				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					BeginTx(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, "hotel-id", dto.CreateRoomRequest{
				Name:          "Standard",
				PricePerNight: 100,
				Quantity:      2,
			})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	svc, m := newRoomService(t)

	room := model.Room{
		ID:            "room-id",
		HotelID:       "hotel-id",
		Name:          "Standard",
		PricePerNight: 100,
		Quantity:      2,
		Active:        true,
	}

	tests := []struct {
		name      string
		hotelID   string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "successful get with catalog names",
			hotelID: "hotel-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.facility.EXPECT().
					GetByRoom(gomock.Any(), "room-id").
					Return([]facilityModel.Facility{{ID: "f1", Name: "Pool"}}, nil)

				m.amenity.EXPECT().
					GetByRoom(gomock.Any(), "room-id").
					Return([]amenityModel.Amenity{{ID: "a1", Name: "WiFi"}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:    "room belongs to another hotel",
			hotelID: "other-hotel",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:    "room not found",
			hotelID: "hotel-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.hotelID, "room-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, []string{"Pool"}, result.Facilities)
				assert.Equal(t, []string{"WiFi"}, result.Amenities)
			}
		})
	}
}

func TestRoomService_Search(t *testing.T) {
	svc, m := newRoomService(t)

	rooms := []model.Room{
		{ID: "room-a", HotelID: "hotel-id", Name: "Standard", PricePerNight: 100, Quantity: 2, Active: true},
		{ID: "room-b", HotelID: "hotel-id", Name: "Deluxe", PricePerNight: 200, Quantity: 1, Active: true},
	}

	from := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	t.Run("hotel not found", func(t *testing.T) {
		m.hotel.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Search(context.Background(), "hotel-id", nil)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("without a range full quantities are reported", func(t *testing.T) {
		m.hotel.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		res, err := svc.Search(context.Background(), "hotel-id", nil)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 2, res.Rooms[0].RoomsLeft)
		assert.Equal(t, 1, res.Rooms[1].RoomsLeft)
	})

	t.Run("fully booked room types are dropped", func(t *testing.T) {
		m.hotel.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		m.booking.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{
					ID:       "booking-1",
					RoomID:   "room-b",
					DateFrom: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
					DateTo:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
					Status:   bookingModel.StatusConfirmed,
				},
			}, nil)

		res, err := svc.Search(context.Background(), "hotel-id", &gDto.DateRange{From: from, To: to})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, "room-a", res.Rooms[0].ID)
	})

	t.Run("reversed range maps to 422", func(t *testing.T) {
		m.hotel.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		m.booking.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := svc.Search(context.Background(), "hotel-id", &gDto.DateRange{From: to, To: from})

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	svc, m := newRoomService(t)

	room := model.Room{ID: "room-id", HotelID: "hotel-id"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "hotel-id", "room-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
