package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	amenityMocks "lodge/internal/domains/amenity/mocks"
	"lodge/internal/domains/amenity/model"
	"lodge/internal/domains/amenity/model/dto"
	"lodge/internal/domains/amenity/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

func newAmenityService(t *testing.T) (service.Amenity, *amenityMocks.MockAmenity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Cache.CatalogTTL = 86400

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestAmenityService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newAmenityService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("duplicate key"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, dto.CreateAmenityRequest{Name: "WiFi"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newAmenityService(t)

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
	})

	t.Run("cache miss, successful get from db", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Amenity{{ID: "a1", Name: "WiFi"}, {ID: "a2", Name: "TV"}}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
	})
}

func TestAmenityService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newAmenityService(t)

	t.Run("amenity not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Amenity{}, nil)

		_, err := svc.Get(context.Background(), "a1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("cache miss, successful get from db", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Amenity{ID: "a1", Name: "WiFi"}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "a1")

		assert.NoError(t, err)
		assert.Equal(t, "WiFi", res.Name)
	})
}

func TestAmenityService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newAmenityService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
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
			name: "amenity not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "a1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
