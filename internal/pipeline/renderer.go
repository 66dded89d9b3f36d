package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

// personaTimestamp is the layout embedded in persona file names
const personaTimestamp = "20060102-150405"

// Renderer writes reports and narratives under an output directory
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer writing into dir
func NewRenderer(dir string) *Renderer {
	if dir == "" {
		dir = "."
	}
	return &Renderer{dir: dir}
}

// Path returns name joined to the output directory
func (r *Renderer) Path(name string) string {
	return filepath.Join(r.dir, name)
}

// RenderJSON writes v as indented JSON
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return writeFile(path, []byte(MarkdownReport(report)))
}

// RenderComparisonMarkdown writes a side-by-side comparison
func (r *Renderer) RenderComparisonMarkdown(cmp *model.Comparison, path string) error {
	return writeFile(path, []byte(MarkdownComparison(cmp)))
}

// SavePersona writes a narrative to <dir>/<user>_persona_<YYYYMMDD-HHMMSS>.txt
func (r *Renderer) SavePersona(username, text string, at time.Time) (string, error) {
	path := r.Path(fmt.Sprintf("%s_persona_%s.txt", safeName(username), at.Format(personaTimestamp)))
	if err := writeFile(path, []byte(text)); err != nil {
		return "", err
	}
	return path, nil
}

// RenderSummary prints a short plain-text digest of the report
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	a := report.Analysis
	_, _ = fmt.Fprintf(w, "u/%s: %d items\n", report.Username, itemTotal(report))
	_, _ = fmt.Fprintf(w, "  Dominant traits: %s\n", orNone(a.Personality.DominantTraits))
	_, _ = fmt.Fprintf(w, "  Dominant topics: %s\n", orNone(a.Topics.DominantTopics))
	_, _ = fmt.Fprintf(w, "  Formality: %s, engagement: %s\n", a.WritingStyle.Formality.FormalityLevel, a.Social.Replies.EngagementStyle)
	for _, insight := range a.Sentiment.Insights {
		_, _ = fmt.Fprintf(w, "  - %s\n", insight)
	}
}

// MarkdownReport renders report as Markdown
func MarkdownReport(report *model.Report) string {
	var b strings.Builder
	a := report.Analysis

	fmt.Fprintf(&b, "# Persona Report: u/%s\n\n", report.Username)
	fmt.Fprintf(&b, "- Generated: %s\n", report.GeneratedAt.Format(time.RFC3339))
	if report.SourceURL != "" {
		fmt.Fprintf(&b, "- Profile: %s\n", report.SourceURL)
	}
	fmt.Fprintf(&b, "- Items analyzed: %s\n\n", formatCounts(report.ItemCounts))
	b.WriteString("> Heuristic keyword and pattern scores. Not a psychological assessment.\n\n")

	b.WriteString("## Sentiment & Behavior\n\n")
	writeInsights(&b, a.Sentiment.Insights)
	writeTable(&b, []string{"Emotion", "% of items"}, sortedRows(a.Sentiment.Emotions))
	writeTable(&b, []string{"Pattern", "% of items"}, sortedRows(a.Sentiment.Behavior))
	e := a.Sentiment.Engagement
	fmt.Fprintf(&b, "Posts: %d, comments: %d, engagement ratio: %.2f\n\n", e.TotalPosts, e.TotalComments, e.EngagementRatio)

	b.WriteString("## Personality (Big Five approximation)\n\n")
	rows := make([][]string, 0, len(a.Personality.Scores))
	for _, s := range a.Personality.Scores {
		rows = append(rows, []string{s.Trait, fmt.Sprintf("%.1f", s.Score), s.Level, fmt.Sprintf("%d", s.Percentile)})
	}
	writeTable(&b, []string{"Trait", "Score", "Level", "Percentile"}, rows)
	fmt.Fprintf(&b, "Dominant traits: %s\n\n", orNone(a.Personality.DominantTraits))
	writeInsights(&b, a.Personality.Insights)

	b.WriteString("## Writing Style\n\n")
	ws := a.WritingStyle
	fmt.Fprintf(&b, "- Readability: %.1f\n", ws.Linguistic.ReadabilityScore)
	fmt.Fprintf(&b, "- Formality: %s (%.1f)\n", ws.Formality.FormalityLevel, ws.Formality.FormalityScore)
	fmt.Fprintf(&b, "- Vocabulary richness: %.3f (%d unique words)\n\n", ws.Vocabulary.VocabularyRichness, ws.Vocabulary.UniqueWords)
	writeInsights(&b, ws.Insights)

	fmt.Fprintf(&b, "## Topics (%s)\n\n", orDefault(string(a.Topics.Strategy), "none"))
	for _, share := range a.Topics.Distribution {
		fmt.Fprintf(&b, "- %s: %.1f%% (%s)\n", share.Label, share.Weight*100, strings.Join(a.Topics.TopicKeywords[share.Label], ", "))
	}
	if len(a.Topics.Distribution) > 0 {
		b.WriteString("\n")
	}
	writeInsights(&b, a.Topics.Insights)

	b.WriteString("## Social Network\n\n")
	m := a.Social.Metrics
	writeTable(&b, []string{"Metric", "Score"}, [][]string{
		{"Social engagement", fmt.Sprintf("%.1f", m.SocialEngagementScore)},
		{"Community integration", fmt.Sprintf("%.1f", m.CommunityIntegrationScore)},
		{"Interaction diversity", fmt.Sprintf("%.1f", m.InteractionDiversityScore)},
		{"Helpfulness", fmt.Sprintf("%.1f", m.HelpfulnessScore)},
	})
	writeInsights(&b, a.Social.Insights)

	b.WriteString("## Activity\n\n")
	writeInsights(&b, a.Activity.Insights)

	if report.Persona != nil {
		b.WriteString("## Persona\n\n")
		if report.Persona.Enabled {
			b.WriteString(report.Persona.Text + "\n\n")
		}
		for _, w := range report.Persona.Warnings {
			fmt.Fprintf(&b, "_Warning: %s_\n\n", w)
		}
	}

	if len(report.Samples) > 0 {
		b.WriteString("## Sample Content\n\n")
		b.WriteString(textutil.FormatCitations(report.Samples) + "\n")
	}

	return b.String()
}

// MarkdownComparison renders a comparison as Markdown
func MarkdownComparison(cmp *model.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Comparison: u/%s vs u/%s\n\n", cmp.Usernames[0], cmp.Usernames[1])
	fmt.Fprintf(&b, "- Generated: %s\n\n", cmp.GeneratedAt.Format(time.RFC3339))

	r1, r2 := cmp.Reports[0], cmp.Reports[1]
	header := []string{"", "u/" + cmp.Usernames[0], "u/" + cmp.Usernames[1]}
	rows := [][]string{
		{"Items", fmt.Sprintf("%d", itemTotal(r1)), fmt.Sprintf("%d", itemTotal(r2))},
		{"Dominant traits", orNone(r1.Analysis.Personality.DominantTraits), orNone(r2.Analysis.Personality.DominantTraits)},
		{"Dominant topics", orNone(r1.Analysis.Topics.DominantTopics), orNone(r2.Analysis.Topics.DominantTopics)},
		{"Formality", r1.Analysis.WritingStyle.Formality.FormalityLevel, r2.Analysis.WritingStyle.Formality.FormalityLevel},
		{"Engagement style", r1.Analysis.Social.Replies.EngagementStyle, r2.Analysis.Social.Replies.EngagementStyle},
	}
	for i := range r1.Analysis.Personality.Scores {
		if i >= len(r2.Analysis.Personality.Scores) {
			break
		}
		s1, s2 := r1.Analysis.Personality.Scores[i], r2.Analysis.Personality.Scores[i]
		rows = append(rows, []string{s1.Trait, fmt.Sprintf("%.1f", s1.Score), fmt.Sprintf("%.1f", s2.Score)})
	}
	writeTable(&b, header, rows)

	if cmp.Narrative != nil {
		b.WriteString("## Narrative Comparison\n\n")
		if cmp.Narrative.Enabled {
			b.WriteString(cmp.Narrative.Text + "\n\n")
		}
		for _, w := range cmp.Narrative.Warnings {
			fmt.Fprintf(&b, "_Warning: %s_\n\n", w)
		}
	}

	return b.String()
}

func writeInsights(b *strings.Builder, insights []string) {
	for _, insight := range insights {
		fmt.Fprintf(b, "- %s\n", insight)
	}
	if len(insights) > 0 {
		b.WriteString("\n")
	}
}

func writeTable(b *strings.Builder, header []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(b, "|%s\n", strings.Repeat("---|", len(header)))
	for _, row := range rows {
		fmt.Fprintf(b, "| %s |\n", strings.Join(row, " | "))
	}
	b.WriteString("\n")
}

// sortedRows renders a percentage map in key order
func sortedRows(m map[string]float64) [][]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprintf("%.1f", m[k])})
	}
	return rows
}

func formatCounts(counts map[string]int) string {
	set := make(model.ContentSet, len(counts))
	for section := range counts {
		set[section] = nil
	}
	parts := make([]string, 0, len(counts))
	for _, section := range set.Sections() {
		parts = append(parts, fmt.Sprintf("%s %d", section, counts[section]))
	}
	return orDefault(strings.Join(parts, ", "), "none")
}

func itemTotal(report *model.Report) int {
	total := 0
	for _, n := range report.ItemCounts {
		total += n
	}
	return total
}

func orNone(values []string) string {
	return orDefault(strings.Join(values, ", "), "none")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// safeName makes a username usable as a file name
func safeName(username string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(username)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
