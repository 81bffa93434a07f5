package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/modaworks/atelier/internal/components"
)

func newIndexHandler() http.Handler {
	builder := ComponentBuilder{Index: components.Index, Error: components.Error}
	return componentHandler{c: indexController{builder: builder}, log: zap.NewNop()}
}

func TestIndex_RendersStudioPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newIndexHandler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "design-form")
	assert.Contains(t, rec.Body.String(), "/api/designs")
}

func TestIndex_UnknownPathRendersNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	newIndexHandler().ServeHTTP(rec, req)

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}
