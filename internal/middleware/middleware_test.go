package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/middleware"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/utils"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const testSecret = "test-secret"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(requestid.New(), middleware.StructuredLoggingMiddleware(slog.Default()))
	r.GET("/", append(handlers, func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})...)
	return r
}

func token(t *testing.T, userID string, expiry time.Duration) string {
	tok, err := utils.GenerateJWT(utils.TokenSubject{UserID: userID}, testSecret, expiry, "test")
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + token(t, "user-1", time.Hour), wantStatus: http.StatusOK, wantBody: "user-1"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + token(t, "user-1", -time.Minute), wantStatus: http.StatusUnauthorized},
		{name: "empty subject", header: "Bearer " + token(t, "", time.Hour), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_ExpiredMessage(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "user-1", -time.Minute))
	r.ServeHTTP(w, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Token has expired", body["error"])
}

func TestRateLimit_PerUser(t *testing.T) {
	lim := limiter.New(memory.NewStore(), limiter.Rate{Period: 15 * time.Minute, Limit: 2})
	r := newRouter(middleware.AuthMiddleware(testSecret), middleware.RateLimit(lim, middleware.ReportLimitMessage))

	call := func(userID string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, userID, time.Hour))
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, call("a").Code)
	w := call("a")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = call("a")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, middleware.ReportLimitMessage, body["message"])

	// another user has its own budget
	assert.Equal(t, http.StatusOK, call("b").Code)
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SecurityHeaders(middleware.DefaultHeadersConfig()))
	r.GET("/api/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/x", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestStructuredLogging_SetsRequestID(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

type recordedEvent struct {
	distinctID string
	event      string
	props      map[string]any
}

type recordingSink struct {
	events []recordedEvent
}

func (s *recordingSink) Enqueue(distinctID string, event string, properties map[string]any) {
	s.events = append(s.events, recordedEvent{distinctID: distinctID, event: event, props: properties})
}

func TestUsageEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sink := &recordingSink{}
	r := gin.New()
	r.Use(middleware.UsageEvents(sink))
	authed := r.Group("/api/journal", middleware.AuthMiddleware(testSecret))
	authed.DELETE("/:entryId", func(c *gin.Context) {
		if c.Param("entryId") == "missing" {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusOK)
	})
	authed.GET("/:monthYear", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(method, path string) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+token(t, "user-1", time.Hour))
		r.ServeHTTP(w, req)
	}

	call(http.MethodDelete, "/api/journal/e1")
	call(http.MethodDelete, "/api/journal/missing")
	call(http.MethodGet, "/api/journal/2025-11")

	require.Len(t, sink.events, 1)
	assert.Equal(t, "user-1", sink.events[0].distinctID)
	assert.Equal(t, "journal_entry_deleted", sink.events[0].event)
	assert.Equal(t, "e1", sink.events[0].props["entryId"])
}

func TestPosthogClient_DisabledWithoutKey(t *testing.T) {
	client, err := utils.NewPosthogClient("", "https://eu.i.posthog.com", slog.Default())
	require.NoError(t, err)
	assert.False(t, client.IsInitialized())

	client.Enqueue("user-1", "journal_entry_added", nil)
	client.Close()
}
