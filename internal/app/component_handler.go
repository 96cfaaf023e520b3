package app

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

type ComponentResponse struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Header      http.Header
	Component   templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)
	reqId := RequestId(r.Context())

	if resp.Error != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, resp.Error.Error()), "request_id", reqId)
	}

	// Render before writing the status so a failed render can still be reported.
	var buf bytes.Buffer
	err := resp.Component.Render(r.Context(), &buf)

	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "request_id", reqId)
		http.Error(w, "templ: failed to render template", http.StatusInternalServerError)
		return
	}

	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", resp.ContentType)

	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}
	w.WriteHeader(code)

	if r.Method != http.MethodHead {
		_, err = buf.WriteTo(w)
		if err != nil {
			slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "request_id", reqId)
		}
	}

	slog.Info(resp.Message, "method", r.Method, "path", r.URL.Path, "code", code, "request_id", reqId)
}
