package pipeline

import (
	"fmt"
	"strings"

	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

// Content block limits for narrative prompts
const (
	PersonaItemsPerSection    = 20
	PersonaBlockChars         = 12000
	ComparisonItemsPerSection = 15
	ComparisonItemChars       = 200
	sampleCount               = 5
)

// PersonaBlock formats up to PersonaItemsPerSection cleaned items per section as
// "[SECTION] text\nSource: locator" entries and keeps the first chunk of
// at most PersonaBlockChars characters
func PersonaBlock(set model.ContentSet) string {
	var entries []string
	for _, section := range set.Sections() {
		items := set[section]
		if len(items) > PersonaItemsPerSection {
			items = items[:PersonaItemsPerSection]
		}
		for _, item := range items {
			entries = append(entries, fmt.Sprintf("[%s] %s\nSource: %s\n", strings.ToUpper(section), textutil.Clean(item.Text), item.SourceLocator))
		}
	}

	chunks := textutil.ChunkTexts(entries, PersonaBlockChars)
	if len(chunks) == 0 {
		return ""
	}
	return textutil.Preview(chunks[0], PersonaBlockChars)
}

// ComparisonBlock formats up to ComparisonItemsPerSection cleaned items per section,
// each cut to ComparisonItemChars characters, joined by "\n---\n"
func ComparisonBlock(set model.ContentSet) string {
	var entries []string
	for _, section := range set.Sections() {
		items := set[section]
		if len(items) > ComparisonItemsPerSection {
			items = items[:ComparisonItemsPerSection]
		}
		for _, item := range items {
			entries = append(entries, fmt.Sprintf("[%s] %s...", strings.ToUpper(section), textutil.Preview(textutil.Clean(item.Text), ComparisonItemChars)))
		}
	}
	return strings.Join(entries, "\n---\n")
}

// samples returns the first n non-empty items across sections for citation
func samples(set model.ContentSet, n int) []model.ContentItem {
	var out []model.ContentItem
	for _, item := range set.Flatten() {
		if len(out) == n {
			break
		}
		if strings.TrimSpace(item.Text) != "" {
			out = append(out, item)
		}
	}
	return out
}
