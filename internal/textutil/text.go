package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var (
	markdownLinkRe = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	wordRe         = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// Clean drops HTML markup (Reddit *_html fields, pasted fragments), unescapes
// entities, replaces markdown links with their label and collapses whitespace.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = stripMarkup(text)
	text = markdownLinkRe.ReplaceAllString(text, "$1")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripMarkup keeps the text content of an HTML fragment. Tags become spaces
// and comments are dropped. Text that is not markup passes through unescaped.
func stripMarkup(text string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}

// Sentences splits text on runs of '.', '!' and '?' and drops empty pieces
func Sentences(text string) []string {
	var out []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Words returns the lowercased word tokens of text
func Words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// Preview returns the first n characters of text (rune-safe)
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}

// Truncate returns Preview(text, n) with "..." appended when text was cut
func Truncate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return Preview(text, n) + "..."
}

// Len returns the character length of text
func Len(text string) int {
	return utf8.RuneCountInString(text)
}

// CountPresent returns how many of terms occur at least once in text.
// text is expected to be lowercased already.
func CountPresent(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// CountOccurrences sums non-overlapping occurrences of every term in text
func CountOccurrences(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		n += strings.Count(text, term)
	}
	return n
}

// ContainsAny reports whether any term occurs in text
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// HasAnyPrefix reports whether text starts with any of prefixes
func HasAnyPrefix(text string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
