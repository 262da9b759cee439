package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/jwt"
	jwtMocks "lodge/infras/jwt/mocks"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/auth/model/dto"
	"lodge/internal/domains/auth/service"
	userMocks "lodge/internal/domains/user/mocks"
	userModel "lodge/internal/domains/user/model"
	"lodge/shared/failure"
	"lodge/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	return svc, mockUserRepo, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	svc, mockUserRepo, _ := newAuthService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "existence check error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), dto.RegisterRequest{
				Email:    "guest@example.com",
				Password: "supersecret",
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

func TestAuthService_Login(t *testing.T) {
	svc, mockUserRepo, mockJWT := newAuthService(t)

	hashed, err := password.Hash("supersecret")
	assert.NoError(t, err)

	user := userModel.User{
		ID:       "user-id",
		Email:    "guest@example.com",
		Password: hashed,
		Role:     "user",
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "guest@example.com", Password: "supersecret"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), "user-id", "guest@example.com", "user").
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "guest@example.com", Password: "wrongpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "supersecret"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("sql: no rows in result set"))
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "guest@example.com", Password: "supersecret"},
			setupMock: func() {
				inactive := user
				inactive.Active = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access", res.AccessToken)
				assert.Equal(t, "refresh", res.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _, mockJWT := newAuthService(t)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "bad-token").
			Return(nil, errors.New("token is malformed"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, mockUserRepo, _ := newAuthService(t)

	hashed, err := password.Hash("oldpassword")
	assert.NoError(t, err)

	user := userModel.User{
		ID:       "user-id",
		Email:    "guest@example.com",
		Password: hashed,
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "newpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "newpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, "user-id")

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
