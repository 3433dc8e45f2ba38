package app

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpager/config"
	"github.com/guttosm/stockpager/internal/api"
	"github.com/guttosm/stockpager/internal/fetcher"
	"github.com/guttosm/stockpager/internal/logger"
	"github.com/guttosm/stockpager/internal/pager"
	"github.com/guttosm/stockpager/internal/service"
	"github.com/guttosm/stockpager/internal/storage"
)

// NewPageRequester builds the upstream requester from cfg. The configured
// timeout bounds a single request; exceeding it yields the 408 sentinel.
func NewPageRequester(cfg config.Config) *fetcher.Requester {
	client := &http.Client{Timeout: cfg.Stocks.Timeout}
	return fetcher.NewRequester(cfg.Stocks.BaseURL, client)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL and applies migrations when the fetch log is enabled.
//   - Builds the upstream requester and the page service on top of it.
//   - Creates the session store, the HTTP handler and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	var (
		conn   *sql.DB
		repo   storage.FetchLogRepository
		checks = map[string]api.Check{}
	)
	if cfg.Postgres.Enabled {
		var err error
		conn, err = postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		if err := migrator(conn); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("failed to migrate postgres: %w", err)
		}
		repo = storage.NewFetchLogRepository(conn)
		checks["postgres"] = conn.PingContext
	} else {
		logger.L().Info().Msg("fetch log disabled (POSTGRES_ENABLED=false)")
	}

	svc := service.NewPageService(NewPageRequester(cfg), repo)
	sessions := pager.NewStore(svc, cfg.Session.TTL)
	handler := api.NewHandler(svc, sessions)

	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		RequestTimeout: cfg.Stocks.Timeout,
	})

	api.NewHealthHandler(checks).Register(router)

	cleanup := func() {
		if conn != nil {
			_ = conn.Close()
		}
	}

	return router, cleanup, nil
}
