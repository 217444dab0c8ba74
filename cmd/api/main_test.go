package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-pos-terminal/internal/catalog"
	"github.com/imrishuroy/go-pos-terminal/internal/config"
	"github.com/imrishuroy/go-pos-terminal/internal/handlers"
	"github.com/imrishuroy/go-pos-terminal/internal/orders"
	"github.com/imrishuroy/go-pos-terminal/internal/pos"
	"github.com/imrishuroy/go-pos-terminal/internal/session"
)

func TestSetupRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(handlers.HandlerConfig{
		Terminal: pos.New(catalog.Default(), session.NewGate(session.DefaultCredentials()), orders.NewEngine(nil)),
		Logger:   zap.NewNop(),
	})

	for _, path := range []string{"/health", "/menu", "/session"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestNewLogger(t *testing.T) {
	for _, cfg := range []*config.Config{
		{Log: config.LogConfig{Level: "info"}},
		{Log: config.LogConfig{Level: "debug"}},
		{HTTP: config.HTTPConfig{RunLocal: true}},
	} {
		l, err := newLogger(cfg)
		if err != nil || l == nil {
			t.Fatalf("newLogger(%+v): %v", cfg.Log, err)
		}
	}
}
