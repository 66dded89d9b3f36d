package textutil

import (
	"fmt"
	"strings"

	"github.com/ppiankov/persona/internal/model"
)

// DefaultChunkSize is the character budget of one chunk passed to a language model
const DefaultChunkSize = 3000

// ChunkTexts packs texts into chunks of fewer than size characters, joining
// texts within a chunk by a blank line. A single text longer than size becomes
// its own chunk.
func ChunkTexts(texts []string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks []string
	var current strings.Builder

	for _, text := range texts {
		if current.Len() > 0 && current.Len()+2+len(text) >= size {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(text)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		chunks = append(chunks, s)
	}

	return chunks
}

// FormatCitations renders items as a markdown bullet list of quoted excerpts with source links
func FormatCitations(items []model.ContentItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		content := Clean(item.Text)
		if Len(item.Text) > 150 {
			content = Preview(content, 150) + "..."
		}
		lines = append(lines, fmt.Sprintf("- \"%s\" ([source](%s))", content, item.SourceLocator))
	}
	return strings.Join(lines, "\n")
}
