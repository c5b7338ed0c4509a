package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthEndpoints(t *testing.T) {
	cases := []struct {
		name       string
		dbPing     func() error
		path       string
		wantStatus int
	}{
		{name: "healthz always ok", dbPing: nil, path: "/healthz", wantStatus: http.StatusOK},
		{name: "readyz ok when db reachable", dbPing: func() error { return nil }, path: "/readyz", wantStatus: http.StatusOK},
		{name: "readyz degraded when db down", dbPing: func() error { return errors.New("down") }, path: "/readyz", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			NewHealthHandler(tc.dbPing).Register(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}
