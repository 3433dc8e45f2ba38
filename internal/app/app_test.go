package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/guttosm/stockpager/config"
)

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"per_page":1,"total":1,"total_pages":1,"data":[{"date":"5-January-2000","open":5.81,"high":5.88,"low":5.5,"close":5.71}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: "0"},
		Stocks: config.StocksConfig{BaseURL: baseURL, Timeout: 2 * time.Second},
		Postgres: config.PostgresConfig{
			Host:     "127.0.0.1",
			Port:     54329, // unlikely mapped
			User:     "x",
			Password: "y",
			DBName:   "z",
			SSLMode:  "disable",
		},
	}
}

func useConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

// TestInitPostgres_InvalidHost expects ping failure.
func TestInitPostgres_InvalidHost(t *testing.T) {
	db, err := InitPostgres(testConfig(""))
	if err == nil {
		_ = db.Close()
		t.Fatalf("expected error connecting to invalid DB")
	}
}

// TestInitializeApp_DBFailure ensures InitializeApp returns error when DB cannot connect.
func TestInitializeApp_DBFailure(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Postgres.Enabled = true
	useConfig(t, cfg)

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with invalid DB config")
	}
}

func TestInitializeApp_MigrationFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	mock.ExpectClose()

	oldOpen, oldMigrate := postgresOpener, migrator
	postgresOpener = func(config.Config) (*sql.DB, error) { return db, nil }
	migrator = func(*sql.DB) error { return errors.New("bad migration") }
	t.Cleanup(func() { postgresOpener, migrator = oldOpen, oldMigrate })

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Postgres.Enabled = true
	useConfig(t, cfg)

	if _, _, err := InitializeApp(); err == nil || !strings.Contains(err.Error(), "migrate") {
		t.Fatalf("expected migration error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitializeApp_WithoutPostgres(t *testing.T) {
	srv := upstream(t)
	useConfig(t, testConfig(srv.URL))

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}
	defer cleanup()

	cases := []struct {
		path string
		want int
	}{
		{path: "/healthz", want: http.StatusOK},
		{path: "/readyz", want: http.StatusOK},
		{path: "/api/v1/page?page=1", want: http.StatusOK},
		{path: "/api/v1/fetches", want: http.StatusServiceUnavailable},
		{path: "/", want: http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("%s: status=%d want %d body=%s", tc.path, w.Code, tc.want, w.Body.String())
		}
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	srv := upstream(t)

	// sqlmock DB that pings successfully and accepts one fetch log insert
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	mock.ExpectExec(`INSERT INTO fetch_log`).
		WithArgs(1, 200, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectPing()

	oldOpen, oldMigrate := postgresOpener, migrator
	postgresOpener = func(config.Config) (*sql.DB, error) { return db, nil }
	migrator = func(*sql.DB) error { return nil }
	t.Cleanup(func() {
		postgresOpener, migrator = oldOpen, oldMigrate
		_ = db.Close()
	})

	cfg := testConfig(srv.URL)
	cfg.Postgres.Enabled = true
	useConfig(t, cfg)

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/page?page=1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("page status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNewPageRequester(t *testing.T) {
	srv := upstream(t)
	req := NewPageRequester(testConfig(srv.URL))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	resp := req.RequestPage(ctx, 1)
	if resp.Failed() || len(resp.Data) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
