package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteDB "lockfocus-assistant/config/sqlite"
	chatUC "lockfocus-assistant/internal/chat/usecase"
	"lockfocus-assistant/internal/executive"
	memorySQLite "lockfocus-assistant/internal/memory/repository/sqlite"
	"lockfocus-assistant/internal/middleware"
	"lockfocus-assistant/internal/rules"
	"lockfocus-assistant/internal/taskparser"
	taskUC "lockfocus-assistant/internal/task/usecase"
	"lockfocus-assistant/pkg/gemini"
	"lockfocus-assistant/pkg/log"
)

func newTestConfig(t *testing.T) Config {
	t.Helper()
	engine, err := rules.New()
	require.NoError(t, err)

	ctx := context.Background()
	db, err := sqliteDB.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteDB.Disconnect(ctx, db) })
	require.NoError(t, memorySQLite.Migrate(ctx, db))

	l := log.NewNop()
	parser := taskparser.New()
	analyzer := executive.New(executive.Options{})
	return Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		Middleware:  middleware.Config{AllowedOrigins: []string{"*"}},
		ChatUseCase: chatUC.New(l, engine, parser, gemini.New(gemini.Config{}), analyzer, memorySQLite.New(db, l), chatUC.Options{}),
		TaskUseCase: taskUC.New(l, parser),
	}
}

func TestNew_Validation(t *testing.T) {
	cfg := newTestConfig(t)

	_, err := New(nil, cfg)
	assert.Error(t, err)

	bad := cfg
	bad.Port = 0
	_, err = New(cfg.Logger, bad)
	assert.Error(t, err)

	bad = cfg
	bad.ChatUseCase = nil
	_, err = New(cfg.Logger, bad)
	assert.Error(t, err)

	_, err = New(cfg.Logger, cfg)
	assert.NoError(t, err)
}

func TestRoutes(t *testing.T) {
	cfg := newTestConfig(t)
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
		has    string
	}{
		{http.MethodGet, "/health", "", http.StatusOK, "healthy"},
		{http.MethodGet, "/ready", "", http.StatusOK, `"mode":"offline"`},
		{http.MethodGet, "/ready", "", http.StatusOK, `"memory":"enabled"`},
		{http.MethodGet, "/live", "", http.StatusOK, "alive"},
		{http.MethodGet, "/api/health", "", http.StatusOK, `"gemini":"disconnected"`},
		{http.MethodGet, "/api/rules", "", http.StatusOK, `"totalRules":12`},
		{http.MethodPost, "/api/chat", `{"message":"I feel hopeless"}`, http.StatusOK, `"action":"safety_net"`},
		{http.MethodPost, "/api/chat", `{}`, http.StatusBadRequest, "message is required"},
		{http.MethodDelete, "/api/chat/sessions/abc", "", http.StatusOK, `"error_code":0`},
		{http.MethodGet, "/api/status", "", http.StatusOK, `"status":"online"`},
		{http.MethodGet, "/api/status", "", http.StatusOK, `"model":"gemini-2.5-flash"`},
		{http.MethodDelete, "/api/history", "", http.StatusOK, `"message":"Memory wiped."`},
		{http.MethodGet, "/api/chat/sessions/abc/memory", "", http.StatusOK, `"sessionId":"abc"`},
		{http.MethodPost, "/api/test/parse-tasks", `{"message":"buy milk, call mom"}`, http.StatusOK, `"tasksFound":2`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.has)
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestChatMemoryRoundTrip(t *testing.T) {
	cfg := newTestConfig(t)
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	w := serve(http.MethodPost, "/api/chat", `{"message":"stress 9, buy milk, call mom","sessionId":"s1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mentalState":"break"`)

	w = serve(http.MethodGet, "/api/chat/sessions/s1/memory", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"trigger_break"`)
	assert.Contains(t, w.Body.String(), `"text":"Buy milk"`)
	assert.Contains(t, w.Body.String(), `"stress":9`)

	w = serve(http.MethodDelete, "/api/chat/sessions/s1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(http.MethodGet, "/api/chat/sessions/s1/memory", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"readings":null`)
	assert.Contains(t, w.Body.String(), `"patterns":[]`)
	assert.Contains(t, w.Body.String(), `"tasks":[]`)
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := newTestConfig(t)
	cfg.Port = port
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/live", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
