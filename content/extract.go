package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/kaptinlin/jsonrepair"
)

// documentPatterns are tried in order: full document with doctype, html element, body element.
var documentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<!DOCTYPE html\s*>?\s*<html[^>]*>.*?</html>`),
	regexp.MustCompile(`(?is)<html[^>]*>.*?</html>`),
	regexp.MustCompile(`(?is)<body[^>]*>.*?</body>`),
}

var jsonFence = regexp.MustCompile("(?s)```json(.*?)```")

// Document is the outcome of ExtractDocument. When Found is false HTML holds the
// original text unchanged.
type Document struct {
	HTML  string
	Found bool
}

// ExtractDocument pulls the first HTML document out of free-form model output,
// ignoring surrounding prose and code fences.
func ExtractDocument(text string) Document {
	for _, pattern := range documentPatterns {
		if match := pattern.FindString(text); match != "" {
			return Document{HTML: strings.TrimSpace(match), Found: true}
		}
	}
	return Document{HTML: text}
}

// ExtractJSON decodes the JSON value in model output. A ```json fenced block wins over
// the rest of the text; otherwise prose around the first object or array is dropped.
// Malformed JSON is repaired before giving up.
func ExtractJSON(text string) (any, error) {
	if m := jsonFence.FindStringSubmatch(text); m != nil {
		text = m[1]
	} else {
		text = jsonSpan(text)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", errors.ErrJSONParse)
	}

	var value any
	if err := json.Unmarshal([]byte(text), &value); err == nil {
		return value, nil
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrJSONParse, err)
	}
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrJSONParse, err)
	}
	return value, nil
}

// jsonSpan returns text from the first '{' or '[' through its matching close.
// An unclosed value runs to the end of the text so repair can close it.
func jsonSpan(text string) string {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return text[start:]
}
