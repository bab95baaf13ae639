package content_test

import (
	"testing"

	"github.com/jrsteele09/notebridge/content"
	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/stretchr/testify/require"
)

const fullDocument = `<!DOCTYPE html>
<html lang="en">
  <head><title>Notes</title></head>
  <body><p>Body</p></body>
</html>`

func TestExtractDocument(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantFound bool
	}{
		{
			name:      "fenced document with doctype",
			input:     "Here is your page:\n```html\n" + fullDocument + "\n```\nEnjoy!",
			want:      fullDocument,
			wantFound: true,
		},
		{
			name:      "case insensitive",
			input:     "<!doctype HTML><HTML><BODY>x</BODY></HTML> trailing",
			want:      "<!doctype HTML><HTML><BODY>x</BODY></HTML>",
			wantFound: true,
		},
		{
			name:      "html element without doctype",
			input:     "prose <html>\n<body>hi</body>\n</html> more prose",
			want:      "<html>\n<body>hi</body>\n</html>",
			wantFound: true,
		},
		{
			name:      "body fragment",
			input:     "Sure!\n<body>\n<p>only body</p>\n</body>\nDone.",
			want:      "<body>\n<p>only body</p>\n</body>",
			wantFound: true,
		},
		{
			name:      "first document wins",
			input:     "<html><body>one</body></html><html><body>two</body></html>",
			want:      "<html><body>one</body></html>",
			wantFound: true,
		},
		{
			name:      "no match returns the original text",
			input:     "  <p>just a paragraph</p>  ",
			want:      "  <p>just a paragraph</p>  ",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := content.ExtractDocument(tt.input)
			require.Equal(t, tt.want, doc.HTML)
			require.Equal(t, tt.wantFound, doc.Found)
		})
	}
}

func TestExtractDocument_Idempotent(t *testing.T) {
	inputs := []string{
		"```html\n" + fullDocument + "\n```",
		"text <html><body>b</body></html> text",
		"x <body>y</body> z",
		"nothing to see",
		"",
	}
	for _, input := range inputs {
		once := content.ExtractDocument(input).HTML
		twice := content.ExtractDocument(once).HTML
		require.Equal(t, once, twice, "input %q", input)
	}
}

func TestExtractJSON(t *testing.T) {
	t.Run("fenced json", func(t *testing.T) {
		v, err := content.ExtractJSON("```json {\"a\":1} ```")
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": float64(1)}, v)
	})

	t.Run("fenced json with surrounding prose", func(t *testing.T) {
		v, err := content.ExtractJSON("Here are your questions:\n```json\n[{\"q\":\"What?\",\"options\":[\"A\",\"B\"]}]\n```\nGood luck")
		require.NoError(t, err)
		require.Equal(t, []any{map[string]any{"q": "What?", "options": []any{"A", "B"}}}, v)
	})

	t.Run("unfenced json with surrounding prose", func(t *testing.T) {
		v, err := content.ExtractJSON("Sure! Here are the questions: [{\"q\":1}] Hope that helps.")
		require.NoError(t, err)
		require.Equal(t, []any{map[string]any{"q": float64(1)}}, v)

		v, err = content.ExtractJSON("Here you go:\n{\"a\": 1}\nThanks")
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": float64(1)}, v)
	})

	t.Run("brackets inside strings", func(t *testing.T) {
		v, err := content.ExtractJSON(`Result: {"q": "pick [A] or {B}", "esc": "say \"]\""} done`)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"q": "pick [A] or {B}", "esc": `say "]"`}, v)
	})

	t.Run("unclosed json after prose is repaired", func(t *testing.T) {
		v, err := content.ExtractJSON("Questions:\n[1, 2, 3")
		require.NoError(t, err)
		require.Equal(t, []any{float64(1), float64(2), float64(3)}, v)
	})

	t.Run("bare json", func(t *testing.T) {
		v, err := content.ExtractJSON(`  {"answer": true}  `)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"answer": true}, v)
	})

	t.Run("trailing comma is repaired", func(t *testing.T) {
		v, err := content.ExtractJSON(`{"a":1,}`)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": float64(1)}, v)
	})

	t.Run("missing closing bracket is repaired", func(t *testing.T) {
		v, err := content.ExtractJSON("```json\n[1, 2, 3\n```")
		require.NoError(t, err)
		require.Equal(t, []any{float64(1), float64(2), float64(3)}, v)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := content.ExtractJSON("")
		require.ErrorIs(t, err, errors.ErrJSONParse)

		_, err = content.ExtractJSON("```json\n\n```")
		require.ErrorIs(t, err, errors.ErrJSONParse)
	})
}
