package router

import (
	"lodge/internal/handlers/amenity"
	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/facility"
	"lodge/internal/handlers/hotel"
	"lodge/internal/handlers/image"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/user"
	"lodge/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Hotel    hotel.Handler
	Room     room.Handler
	Booking  booking.Handler
	Facility facility.Handler
	Amenity  amenity.Handler
	Image    image.Handler
	User     user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		routerGroup.Route("/hotels", func(hotelGroup chi.Router) {
			r.DomainHandlers.Hotel.Router(hotelGroup)
			r.DomainHandlers.Room.Router(hotelGroup)
		})
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.Image.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
