package analysis

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks strips markdown links (keeping their text) and bare URLs.
// Link targets carry no affect signal and skew the polarity scorer.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// NormalizePlainText renders any markdown in the fragment to plain text and
// removes links, leaving whitespace-normalized prose for the scorer.
func NormalizePlainText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := htmlTagPattern.ReplaceAllString(string(output), " ")
	plain := strings.Join(strings.Fields(stripped), " ")

	return RemoveLinks(plain)
}
