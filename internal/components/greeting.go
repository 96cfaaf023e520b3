package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/felixbrock/hello/internal/styles"
)

const (
	GreetingTitle       = "Hello, World!"
	GreetingDescription = "This is a basic React application created with Create React App and TypeScript."
)

func Greeting() templ.Component {
	return greeting(styles.Greeting())
}

func greeting(sheet styles.Sheet) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="`+templ.EscapeString(sheet.Container.ClassName())+`">`+
				`<h1 class="`+templ.EscapeString(sheet.Title.ClassName())+`">`+
				templ.EscapeString(GreetingTitle)+
				`</h1>`+
				`<p class="`+templ.EscapeString(sheet.Description.ClassName())+`">`+
				templ.EscapeString(GreetingDescription)+
				`</p>`+
				`</div>`)
		return err
	})
}
