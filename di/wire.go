//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	amenityRepository "lodge/internal/domains/amenity/repository"
	amenityService "lodge/internal/domains/amenity/service"
	authService "lodge/internal/domains/auth/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	facilityRepository "lodge/internal/domains/facility/repository"
	facilityService "lodge/internal/domains/facility/service"
	hotelRepository "lodge/internal/domains/hotel/repository"
	hotelService "lodge/internal/domains/hotel/service"
	imageService "lodge/internal/domains/image/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"

	amenityHandler "lodge/internal/handlers/amenity"
	authHandler "lodge/internal/handlers/auth"
	bookingHandler "lodge/internal/handlers/booking"
	facilityHandler "lodge/internal/handlers/facility"
	hotelHandler "lodge/internal/handlers/hotel"
	imageHandler "lodge/internal/handlers/image"
	roomHandler "lodge/internal/handlers/room"
	userHandler "lodge/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var imageDomain = wire.NewSet(
	imageService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomDomain,
	bookingDomain,
	facilityDomain,
	amenityDomain,
	authDomain,
	userDomain,
	imageDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	facilityHandler.New,
	amenityHandler.New,
	imageHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
