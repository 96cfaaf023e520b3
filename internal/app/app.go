package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
)

type ComponentBuilder struct {
	Index      func() templ.Component
	Greeting   func() templ.Component
	Stylesheet func(minified bool) templ.Component
	Error      func(code int, title string, msg string) templ.Component
}

type App struct {
	ComponentBuilder ComponentBuilder
	Config           Config
	StylesheetPath   string

	limiter *clientLimiter
}

func New(config Config, builder ComponentBuilder, stylesheetPath string) *App {
	return &App{
		ComponentBuilder: builder,
		Config:           config,
		StylesheetPath:   stylesheetPath,
		limiter:          newClientLimiter(config.RateLimit, config.RateBurst),
	}
}

func (a *App) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", a.route("/", a.index))
	mux.Handle("/greeting", a.route("/greeting", a.greeting))
	mux.Handle(a.StylesheetPath, a.route(a.StylesheetPath, a.stylesheet))

	return withRequestId(mux)
}

// route serves h only at exactly path; other paths falling through to the
// same pattern get a 404 before the method is checked.
func (a *App) route(path string, h ComponentHandler) ComponentHandler {
	return a.rateLimited(a.exactPath(path, a.readOnly(h)))
}

func (a *App) Start() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.Config.Port),
		Handler:           a.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
	return srv.ListenAndServe()
}
