package app

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"
)

type component interface {
	Render(ctx context.Context, w io.Writer) error
}

type componentResponse struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   component
}

type componentController interface {
	Handle(http.ResponseWriter, *http.Request) *componentResponse
}

type componentHandler struct {
	c   componentController
	log *zap.Logger
}

func (h componentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.c.Handle(w, r)

	if resp.Error != nil {
		h.log.Error("request failed", zap.Int("code", resp.Code), zap.Error(resp.Error))
	}

	w.Header().Add("Content-Type", resp.ContentType)
	if resp.Code != 0 {
		w.WriteHeader(resp.Code)
	}

	err := resp.Component.Render(r.Context(), w)

	if err != nil {
		h.log.Error("component render failed", zap.Error(err))
		http.Error(w, "templ: failed to render template", 500)
	}
}
