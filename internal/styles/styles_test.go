package styles

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingSheetIsValid(t *testing.T) {
	require.NoError(t, Greeting().Validate())
}

func TestGreetingSheetScopesLogicalNames(t *testing.T) {
	s := Greeting()

	assert.True(t, strings.HasPrefix(s.Container.ClassName(), "container_"))
	assert.True(t, strings.HasPrefix(s.Title.ClassName(), "title_"))
	assert.True(t, strings.HasPrefix(s.Description.ClassName(), "description_"))

	assert.NotEqual(t, s.Container.ClassName(), s.Title.ClassName())
	assert.NotEqual(t, s.Title.ClassName(), s.Description.ClassName())
	assert.NotEqual(t, s.Container.ClassName(), s.Description.ClassName())
}

func TestGreetingSheetIsDeterministic(t *testing.T) {
	assert.Equal(t, Greeting(), Greeting())
}

func TestValidateRejectsEmptyBinding(t *testing.T) {
	s := Greeting()
	s.Title = templ.ComponentCSSClass{}

	err := s.Validate()
	require.ErrorIs(t, err, ErrUnresolvedClass)
	assert.Contains(t, err.Error(), "title")
}

func TestValidateRejectsDuplicateBinding(t *testing.T) {
	s := Greeting()
	s.Description = s.Container

	err := s.Validate()
	require.ErrorIs(t, err, ErrDuplicateClass)
	assert.Contains(t, err.Error(), "container and description")
}

func TestCSSContainsEveryRule(t *testing.T) {
	s := Greeting()
	css := s.CSS()

	assert.Contains(t, css, "."+s.Container.ClassName()+"{")
	assert.Contains(t, css, "."+s.Title.ClassName()+"{")
	assert.Contains(t, css, "."+s.Description.ClassName()+"{")
}

func TestMinify(t *testing.T) {
	s := Greeting()

	out, err := Minify(s.CSS())
	require.NoError(t, err)

	assert.Less(t, len(out), len(s.CSS()))
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "."+s.Title.ClassName()+"{")
}

func TestStylesheet(t *testing.T) {
	s := Greeting()

	var raw bytes.Buffer
	require.NoError(t, s.Stylesheet(false).Render(context.Background(), &raw))
	assert.Equal(t, s.CSS(), raw.String())

	var minified bytes.Buffer
	require.NoError(t, s.Stylesheet(true).Render(context.Background(), &minified))
	want, err := Minify(s.CSS())
	require.NoError(t, err)
	assert.Equal(t, want, minified.String())
}
