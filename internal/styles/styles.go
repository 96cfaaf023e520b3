package styles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
)

var (
	ErrUnresolvedClass = errors.New("unresolved style class")
	ErrDuplicateClass  = errors.New("duplicate style class")
)

// Sheet binds the logical class names of the greeting to scoped classes.
type Sheet struct {
	Container   templ.ComponentCSSClass
	Title       templ.ComponentCSSClass
	Description templ.ComponentCSSClass
}

func Greeting() Sheet {
	return Sheet{
		Container: scoped("container",
			"display:flex;",
			"flex-direction:column;",
			"align-items:center;",
			"padding:2rem;",
			"text-align:center;",
		),
		Title: scoped("title",
			"margin:0 0 1rem 0;",
			"font-size:2.5rem;",
			"color:#282c34;",
		),
		Description: scoped("description",
			"margin:0;",
			"font-size:1.125rem;",
			"line-height:1.5;",
			"color:#4a4f5a;",
		),
	}
}

// scoped builds a class whose ID is the logical name suffixed with a hash
// of its declarations, the same ID templ generates for css components.
func scoped(name string, decls ...string) templ.ComponentCSSClass {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d)
	}
	id := templ.CSSID(name, b.String())

	return templ.ComponentCSSClass{
		ID:    id,
		Class: templ.SafeCSS(`.` + id + `{` + b.String() + `}`),
	}
}

func (s Sheet) bindings() []struct {
	name  string
	class templ.ComponentCSSClass
} {
	return []struct {
		name  string
		class templ.ComponentCSSClass
	}{
		{"container", s.Container},
		{"title", s.Title},
		{"description", s.Description},
	}
}

// Validate reports a binding that is empty or shared with another binding.
func (s Sheet) Validate() error {
	seen := map[string]string{}

	for _, b := range s.bindings() {
		id := b.class.ClassName()
		if id == "" || b.class.Class == "" {
			return fmt.Errorf("%w: %s", ErrUnresolvedClass, b.name)
		}
		if other, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s and %s both resolve to %s", ErrDuplicateClass, other, b.name, id)
		}
		seen[id] = b.name
	}

	return nil
}

func (s Sheet) CSS() string {
	var b strings.Builder
	for _, binding := range s.bindings() {
		b.WriteString(string(binding.class.Class))
		b.WriteString("\n")
	}
	return b.String()
}

func Minify(css string) (string, error) {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)

	out, err := m.String("text/css", css)
	if err != nil {
		return "", fmt.Errorf("minify stylesheet: %w", err)
	}

	return out, nil
}

// Stylesheet renders the sheet as a text/css body.
func (s Sheet) Stylesheet(minified bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		css := s.CSS()

		if minified {
			var err error
			css, err = Minify(css)
			if err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, css)
		return err
	})
}
