// Package content turns notebook markup into prompt input and model output back into
// HTML documents or JSON values.
package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nonContentSelectors are removed before text extraction.
var nonContentSelectors = []string{"style", "script", "meta", "link", "noscript"}

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\v\r\x{00a0}]+`)
	lineEdgeSpace   = regexp.MustCompile(`(?m)^ +| +$`)
	blankLines      = regexp.MustCompile(`\n\s*\n`)
)

// Normalize strips markup from a notebook page and returns its plain text.
// Malformed markup is parsed on a best effort basis; the result is never an error.
func Normalize(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	text := markup
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err == nil {
		for _, sel := range nonContentSelectors {
			doc.Find(sel).Remove()
		}
		text = doc.Text()
	}

	return collapseWhitespace(text)
}

func collapseWhitespace(text string) string {
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = lineEdgeSpace.ReplaceAllString(text, "")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
