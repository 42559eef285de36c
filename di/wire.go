//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/infras/s3"
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"

	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	checkinRepository "inn/internal/domains/checkin/repository"
	checkinService "inn/internal/domains/checkin/service"
	customerRepository "inn/internal/domains/customer/repository"
	customerService "inn/internal/domains/customer/service"
	housekeepingRepository "inn/internal/domains/housekeeping/repository"
	housekeepingService "inn/internal/domains/housekeeping/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"
	staffRepository "inn/internal/domains/staff/repository"
	staffService "inn/internal/domains/staff/service"

	authService "inn/internal/domains/auth/service"

	authHandler "inn/internal/handlers/auth"
	bookingHandler "inn/internal/handlers/booking"
	checkinHandler "inn/internal/handlers/checkin"
	customerHandler "inn/internal/handlers/customer"
	healthHandler "inn/internal/handlers/health"
	housekeepingHandler "inn/internal/handlers/housekeeping"
	roomHandler "inn/internal/handlers/room"
	staffHandler "inn/internal/handlers/staff"

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
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var checkinDomain = wire.NewSet(
	checkinRepository.New,
	checkinService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var domains = wire.NewSet(
	staffDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	checkinDomain,
	customerDomain,
	housekeepingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	roomHandler.New,
	bookingHandler.New,
	checkinHandler.New,
	customerHandler.New,
	housekeepingHandler.New,
	healthHandler.New,
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
