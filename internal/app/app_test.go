package app

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gmartins-dev/salesdesk/config"
)

func testAppConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:        "8080",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Auth: config.AuthConfig{JWTSecret: "app-test-secret"},
		Postgres: config.PostgresConfig{
			Host: "127.0.0.1", Port: 54329, User: "x", Password: "y",
			DBName: "z", SSLMode: "disable",
		},
	}
}

// TestInitializeApp_DBFailure ensures InitializeApp returns an error when the
// database cannot be reached.
func TestInitializeApp_DBFailure(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = testAppConfig()

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with invalid DB config")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	mock.ExpectPing()

	oldCfg := config.AppConfig
	oldOpener := postgresOpener
	config.AppConfig = testAppConfig()
	postgresOpener = func(cfg config.Config) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() {
		config.AppConfig = oldCfg
		postgresOpener = oldOpener
		_ = db.Close()
	})

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	// Authenticated routes must reject requests without a token.
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/api/reports", nil))
	if w3.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w3.Code)
	}

	cleanup()
}
