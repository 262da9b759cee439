package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	txMocks "lodge/shared/repository/mocks"
	"lodge/shared/timezone"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockTx := txMocks.NewMockTx(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	room := roomModel.Room{
		ID:            "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
		HotelID:       "hotel-id",
		Name:          "Deluxe",
		PricePerNight: 150,
		Quantity:      1,
		Active:        true,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "malformed dates are rejected",
			req: dto.CreateBookingRequest{
				RoomID:   "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
				DateFrom: "not-a-date",
				DateTo:   "2026-03-05",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  422,
		},
		{
			name: "checkout on the same day is rejected",
			req: dto.CreateBookingRequest{
				RoomID:   "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
				DateFrom: "2026-03-05",
				DateTo:   "2026-03-05",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  422,
		},
		{
			name: "reversed range is rejected",
			req: dto.CreateBookingRequest{
				RoomID:   "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
				DateFrom: "2026-03-08",
				DateTo:   "2026-03-05",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  422,
		},
		{
			name: "begin transaction error",
			req: dto.CreateBookingRequest{
				RoomID:   "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
				DateFrom: "2026-03-05",
				DateTo:   "2026-03-08",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "unknown or inactive room is rejected",
			req: dto.CreateBookingRequest{
				RoomID:   "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
				DateFrom: "2026-03-05",
				DateTo:   "2026-03-08",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(mockTx, nil)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), mockTx, gomock.Any()).
					Return(roomModel.Room{}, nil)

				mockTx.EXPECT().
					Rollback().
					Return(nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "last unit already taken conflicts",
			req: dto.CreateBookingRequest{
				RoomID:   "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
				DateFrom: "2026-03-05",
				DateTo:   "2026-03-08",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(mockTx, nil)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), mockTx, gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					CountTx(gomock.Any(), mockTx, gomock.Any()).
					Return(1, nil)

				mockTx.EXPECT().
					Rollback().
					Return(nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				RoomID:   "7b0f4f0a-3c3e-4a2e-9a60-2f8e4b1f0c11",
				DateFrom: "2026-03-05",
				DateTo:   "2026-03-08",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(mockTx, nil)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), mockTx, gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					CountTx(gomock.Any(), mockTx, gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), mockTx, gomock.Any()).
					Return(nil)

				mockTx.EXPECT().
					Commit().
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.RoomID, res.RoomID)
				assert.Equal(t, 3, res.TotalNights)
				assert.Equal(t, float64(450), res.TotalCost)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	bookings := []model.Booking{
		{
			ID:            "booking-id",
			RoomID:        "room-id",
			UserID:        "user-id",
			DateFrom:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			DateTo:        time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
			PricePerNight: 150,
			Status:        model.StatusConfirmed,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
				assert.Len(t, result.Bookings, 1)
				assert.Equal(t, 3, result.Bookings[0].TotalNights)
				assert.Equal(t, float64(450), result.Bookings[0].TotalCost)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	booking := model.Booking{
		ID:            "booking-id",
		RoomID:        "room-id",
		UserID:        "owner-id",
		DateFrom:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		DateTo:        time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		PricePerNight: 150,
		Status:        model.StatusConfirmed,
	}

	tests := []struct {
		name      string
		userID    string
		role      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "owner can read their booking",
			userID: "owner-id",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name:   "admin can read any booking",
			userID: "someone-else",
			role:   constant.RoleAdmin,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name:   "other users are forbidden",
			userID: "someone-else",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name:   "booking not found",
			userID: "owner-id",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "repository error",
			userID: "owner-id",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, tt.userID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			result, err := svc.Get(ctx, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, booking.ID, result.ID)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	confirmed := model.Booking{
		ID:     "booking-id",
		UserID: "owner-id",
		Status: model.StatusConfirmed,
	}

	cancelled := model.Booking{
		ID:     "booking-id",
		UserID: "owner-id",
		Status: model.StatusCancelled,
	}

	tests := []struct {
		name      string
		userID    string
		role      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "owner cancels their booking",
			userID: "owner-id",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:   "cancelling twice conflicts",
			userID: "owner-id",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:   "other users are forbidden",
			userID: "someone-else",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name:   "booking not found",
			userID: "owner-id",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "update error",
			userID: "owner-id",
			role:   constant.RoleUser,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, tt.userID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.Cancel(ctx, "booking-id")

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
