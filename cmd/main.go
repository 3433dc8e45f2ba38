package main

//
//  @title           stockpager API
//  @version         1.0
//  @description     Paginated stock price viewer rendered server-side.
//  @termsOfService  https://github.com/guttosm/stockpager
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockpager
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        page
//  @tag.description Stock page rendering and pagination
//
//  @tag.name        fetches
//  @tag.description Upstream fetch log
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/stockpager/config"
	_ "github.com/guttosm/stockpager/docs" // swagger docs
	"github.com/guttosm/stockpager/internal/app"
	"github.com/guttosm/stockpager/internal/export"
	"github.com/guttosm/stockpager/internal/logger"
	"github.com/guttosm/stockpager/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runExport writes every upstream page as CSV to out ("-" or "" means stdout).
// When the CSV goes to stdout, logs that would also land there move to stderr.
func runExport(ctx context.Context, svc service.PageService, out string, parallel int) (int, error) {
	var w io.Writer = os.Stdout
	if out == "" || out == "-" {
		if logger.WritesTo(os.Stdout) {
			logger.InitWithOutput(os.Stderr)
		}
	} else {
		f, err := os.Create(out)
		if err != nil {
			return 0, fmt.Errorf("create %s: %w", out, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	return export.Export(ctx, svc, w, parallel)
}

// main is the entry point of the stockpager application.
//
// Modes (selected via --mode flag):
//   - serve:  Starts the HTTP server rendering the paginated stock page.
//   - export: Fetches every page and writes all records as CSV.
//
// Flags:
//   - --mode:     Execution mode ("serve" or "export"). Default: "serve".
//   - --port:     Port for serve mode. Defaults to value from config (SERVER_PORT).
//   - --parallel: Concurrent page requests in export mode (0=auto, max 8).
//   - --out:      CSV destination in export mode. Default: stdout.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "serve", "Mode: serve or export")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for serve mode")
	parallel := flag.Int("parallel", 0, "Concurrent page requests in export mode (0=auto, max 8)")
	out := flag.String("out", "-", "CSV output file for export mode (- = stdout)")
	flag.Parse()

	switch *mode {
	case "serve":
		logger.L().Info().Msg("starting HTTP server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "export":
		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := service.NewPageService(app.NewPageRequester(config.AppConfig), nil)
		n, err := runExport(sigCtx, svc, *out, *parallel)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("export failed")
		}
		logger.L().Info().Int("rows", n).Str("out", *out).Msg("export completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
