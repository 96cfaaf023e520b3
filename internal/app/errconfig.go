package app

import "net/http"

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get404() errCtx {
	return errCtx{
		Code:  http.StatusNotFound,
		Title: "Not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get405() errCtx {
	return errCtx{
		Code:  http.StatusMethodNotAllowed,
		Title: "Method not allowed",
		Msg:   "Sorry, this page can only be read.",
	}
}

func get429() errCtx {
	return errCtx{
		Code:  http.StatusTooManyRequests,
		Title: "Too many requests",
		Msg:   "Sorry, you are sending requests too quickly. Please try again shortly.",
	}
}
