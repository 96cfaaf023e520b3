package app

import (
	"net/http"
	"strings"
)

var readMethods = []string{http.MethodGet, http.MethodHead}

func (a *App) errorResponse(e errCtx, err error) *ComponentResponse {
	return &ComponentResponse{
		Component:   a.ComponentBuilder.Error(e.Code, e.Title, e.Msg),
		Code:        e.Code,
		Message:     e.Title,
		ContentType: "text/html; charset=utf-8",
		Error:       err,
	}
}

func (a *App) exactPath(path string, next ComponentHandler) ComponentHandler {
	return func(w http.ResponseWriter, r *http.Request) *ComponentResponse {
		if r.URL.Path != path {
			return a.errorResponse(get404(), nil)
		}
		return next(w, r)
	}
}

func (a *App) readOnly(next ComponentHandler) ComponentHandler {
	return func(w http.ResponseWriter, r *http.Request) *ComponentResponse {
		for _, m := range readMethods {
			if r.Method == m {
				return next(w, r)
			}
		}

		resp := a.errorResponse(get405(), nil)
		resp.Header = http.Header{"Allow": []string{strings.Join(readMethods, ", ")}}
		return resp
	}
}

func (a *App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return &ComponentResponse{Component: a.ComponentBuilder.Index(), Code: 200, Message: "OK", ContentType: "text/html; charset=utf-8", Error: nil}
}

func (a *App) greeting(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return &ComponentResponse{Component: a.ComponentBuilder.Greeting(), Code: 200, Message: "OK", ContentType: "text/html; charset=utf-8", Error: nil}
}

func (a *App) stylesheet(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return &ComponentResponse{Component: a.ComponentBuilder.Stylesheet(a.Config.MinifyCSS), Code: 200, Message: "OK", ContentType: "text/css; charset=utf-8", Error: nil}
}
