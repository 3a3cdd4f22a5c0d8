package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/snnyvrz/library-manager/internal/repository"
	"github.com/snnyvrz/library-manager/internal/service"
	"github.com/snnyvrz/library-manager/internal/validation"
)

func setupTestRouter(db *gorm.DB) *gin.Engine {
	books := repository.NewGormBookRepository(db)
	writers := repository.NewGormWriterRepository(db)
	logger := zap.NewNop()

	return setupRouterWithServices(
		service.NewBookService(books, writers, logger),
		service.NewWriterService(writers, logger),
	)
}

func setupRouterWithServices(books BookService, writers WriterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	NewBookHandler(books).RegisterRoutes(api)
	NewWriterHandler(writers).RegisterRoutes(api)

	return r
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[validation.ErrorResponse](t, w).Code
}
