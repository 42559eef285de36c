package router

import (
	"inn/internal/handlers/auth"
	"inn/internal/handlers/booking"
	"inn/internal/handlers/checkin"
	"inn/internal/handlers/customer"
	"inn/internal/handlers/health"
	"inn/internal/handlers/housekeeping"
	"inn/internal/handlers/room"
	"inn/internal/handlers/staff"
	"inn/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "inn/docs"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Staff        staff.Handler
	Room         room.Handler
	Booking      booking.Handler
	CheckIn      checkin.Handler
	Customer     customer.Handler
	Housekeeping housekeeping.Handler
	Health       health.Handler
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

	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.CheckIn.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
