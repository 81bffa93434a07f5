package app

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/modaworks/atelier/internal/metrics"
)

type apiError struct {
	Error   error
	Message string
	Code    int
}

type apiController interface {
	Handle(http.ResponseWriter, *http.Request) *apiError
}

type apiHandler struct {
	c   apiController
	log *zap.Logger
}

func (h apiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error("request panicked", zap.Any("panic", rec))
			metrics.DesignRequestsTotal.WithLabelValues(outcomePanic).Inc()
			writeJSONError(w, http.StatusInternalServerError, msgUnexpected)
		}
	}()

	e := h.c.Handle(w, r)
	if e == nil {
		return
	}

	h.log.Error("request failed", zap.Int("code", e.Code), zap.Error(e.Error))
	writeJSONError(w, e.Code, e.Message)
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
