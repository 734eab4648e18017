//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"vetclinic/config"
	"vetclinic/infras/jwt"
	"vetclinic/infras/kafka"
	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	"vetclinic/infras/redis"
	"vetclinic/internal/jobs/expiration"
	"vetclinic/permissions"
	"vetclinic/shared/cache"
	"vetclinic/shared/clock"
	"vetclinic/transport/http"
	"vetclinic/transport/http/middleware"
	"vetclinic/transport/http/router"

	clientRepository "vetclinic/internal/domains/client/repository"
	clientService "vetclinic/internal/domains/client/service"
	petRepository "vetclinic/internal/domains/pet/repository"
	roomRepository "vetclinic/internal/domains/room/repository"
	roomService "vetclinic/internal/domains/room/service"
	vetRepository "vetclinic/internal/domains/vet/repository"
	visitRepository "vetclinic/internal/domains/visit/repository"
	visitService "vetclinic/internal/domains/visit/service"
	visitHandler "vetclinic/internal/handlers/visit"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	kafka.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var clinicDomain = wire.NewSet(
	vetRepository.New,
	petRepository.New,
	roomRepository.New,
	clientRepository.New,
	clientService.NewOwnership,
	roomService.NewAllocator,
)

var visitDomain = wire.NewSet(
	visitRepository.New,
	visitService.NewConflictValidator,
	visitService.New,
)

var domains = wire.NewSet(
	clinicDomain,
	visitDomain,
)

var jobs = wire.NewSet(
	wire.Bind(new(expiration.Expirer), new(visitService.Visit)),
	expiration.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	visitHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		jobs,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
