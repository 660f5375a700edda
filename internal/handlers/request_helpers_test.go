package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondWithError(c, http.StatusNotFound, "GET /customers/:id", "customer not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "customer not found") {
		t.Fatalf("expected error message in body, got %s", w.Body.String())
	}
}

func TestHandlePanicRecoversWithInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	func() {
		defer handlePanic(c, "GET /customers")
		panic("boom")
	}()

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 after recovered panic, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "internal server error") {
		t.Fatalf("expected internal server error in body, got %s", w.Body.String())
	}
}
