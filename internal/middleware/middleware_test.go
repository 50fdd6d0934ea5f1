package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/logger"
	"farmledger/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders app errors with their status", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/x", func(c *gin.Context) { _ = c.Error(apperrors.ErrRoomFull) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("hides unexpected errors", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/x", func(c *gin.Context) { _ = c.Error(errors.New("disk on fire")) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestErrorHandler_AlreadyWritten(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.Use(ErrorHandler())
	r.GET("/x", func(c *gin.Context) {
		err := apperrors.WithMessage(apperrors.ErrInsufficientStock, "only 3 kg left")
		_ = c.Error(err)
		WriteError(c, err)
	})

	counter := metrics.APIErrors.WithLabelValues("INSUFFICIENT_STOCK")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	want := `{"error":{"code":"INSUFFICIENT_STOCK","message":"only 3 kg left"}}`
	if rec.Body.String() != want {
		t.Errorf("expected a single error body, got %s", rec.Body.String())
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected error counter %v, got %v", before+1, got)
	}
}

func TestErrorHandler_LogsInternalCause(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.Use(ErrorHandler())
	r.GET("/x", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("connection reset")))
	})

	counter := metrics.APIErrors.WithLabelValues("INTERNAL_ERROR")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Errorf("internal cause leaked into response: %s", rec.Body.String())
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected error counter %v, got %v", before+1, got)
	}
}

func TestRequestLogging(t *testing.T) {
	t.Run("assigns a request id", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestLogging())
		r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := rec.Header().Get("X-Request-ID")
		if id == "" || rec.Body.String() != id {
			t.Errorf("expected request id in header and context, got %q / %q", id, rec.Body.String())
		}
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestLogging())
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", "0190a0b0-0000-7000-8000-000000000042")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "0190a0b0-0000-7000-8000-000000000042" {
			t.Errorf("expected incoming id to be kept, got %q", got)
		}
	})
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/rooms/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/rooms/:id", "200"))
	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/"+id, nil))
	}
	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/rooms/:id", "200"))

	if after-before != 2 {
		t.Errorf("expected 2 requests on the route template, got %v", after-before)
	}
}
