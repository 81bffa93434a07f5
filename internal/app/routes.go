package app

import (
	"net/http"
)

type indexController struct {
	builder ComponentBuilder
}

func (c indexController) Handle(w http.ResponseWriter, r *http.Request) *componentResponse {
	if r.URL.Path != "/" {
		errCtx := get404()
		return &componentResponse{
			Component:   c.builder.Error(errCtx.Title, errCtx.Msg),
			Code:        errCtx.Code,
			Message:     errCtx.Title,
			ContentType: "text/html",
		}
	}

	return &componentResponse{Component: c.builder.Index(), Code: 200, Message: "OK", ContentType: "text/html"}
}
