package health

import (
	"net/http"

	"inn/config"
	"inn/infras/postgres"
	"inn/shared/cache"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg   *config.Config
	db    *postgres.Connection
	cache cache.RedisCache
}

func New(cfg *config.Config, db *postgres.Connection, cache cache.RedisCache) Handler {
	return Handler{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

type status struct {
	App      string `json:"app"`
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// Health reports service liveness and the state of its backing stores.
// @Summary Health check
// @Description Report the health of the service and its dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} status "Service is healthy"
// @Failure 503 {object} status "A dependency is unavailable"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := status{
		App:      handler.cfg.App.Name,
		Status:   "ok",
		Postgres: "ok",
		Redis:    "ok",
	}

	code := http.StatusOK

	if err := handler.db.Read.PingContext(ctx); err != nil {
		res.Postgres = "unreachable"
		res.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	if err := handler.cache.Ping(ctx); err != nil {
		res.Redis = "unreachable"
		res.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	response.WithJSON(w, code, res)
}
