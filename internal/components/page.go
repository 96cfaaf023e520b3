package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const GreetingStylesheet = "/static/greeting.css"

// Page wraps body in an HTML document that links the given stylesheets.
func Page(title string, stylesheets []string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!doctype html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>`
		for _, href := range stylesheets {
			head += `<link rel="stylesheet" href="` + templ.EscapeString(href) + `">`
		}
		head += `</head><body>`

		if _, err := io.WriteString(w, head); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func Index() templ.Component {
	return Page(GreetingTitle, []string{GreetingStylesheet}, Greeting())
}

func Error(code int, title string, msg string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<main><p>`+strconv.Itoa(code)+`</p>`+
				`<h1>`+templ.EscapeString(title)+`</h1>`+
				`<p>`+templ.EscapeString(msg)+`</p>`+
				`<a href="/">Go back home</a></main>`)
		return err
	})

	return Page(title, nil, body)
}
