package llm

import (
	"context"

	"github.com/ppiankov/persona/internal/logging"
	"github.com/ppiankov/persona/internal/model"
	"github.com/sirupsen/logrus"
)

// Narrator turns prepared content blocks into model-written narratives.
// Failures are reported on the narrative, never returned.
type Narrator struct {
	provider Provider
	log      logrus.FieldLogger
}

// NewNarrator creates a narrator. A nil provider yields disabled narratives.
func NewNarrator(provider Provider, log logrus.FieldLogger) *Narrator {
	return &Narrator{
		provider: provider,
		log:      logging.OrDiscard(log),
	}
}

// GeneratePersona asks the model for a persona write-up of one account
func (n *Narrator) GeneratePersona(ctx context.Context, username, content string) *model.Narrative {
	return n.generate(ctx, "persona", PersonaPrompt(username, content))
}

// Compare asks the model to contrast two accounts
func (n *Narrator) Compare(ctx context.Context, username1, content1, username2, content2 string) *model.Narrative {
	return n.generate(ctx, "comparison", ComparisonPrompt(username1, content1, username2, content2))
}

func (n *Narrator) generate(ctx context.Context, kind, prompt string) *model.Narrative {
	if n.provider == nil {
		return &model.Narrative{
			Enabled:  false,
			Warnings: []string{"LLM provider not configured"},
		}
	}

	narrative := &model.Narrative{Provider: n.provider.Name()}

	if !n.provider.IsAvailable(ctx) {
		n.log.WithFields(logrus.Fields{"provider": narrative.Provider, "kind": kind}).Warn("llm provider unavailable")
		narrative.Warnings = append(narrative.Warnings, "LLM provider "+narrative.Provider+" is not available")
		return narrative
	}

	resp, err := n.provider.Generate(ctx, Request{System: systemPrompt, Prompt: prompt})
	if err != nil {
		n.log.WithFields(logrus.Fields{"provider": narrative.Provider, "kind": kind, "error": err}).Warn("llm generation failed")
		narrative.Warnings = append(narrative.Warnings, "LLM generation failed: "+err.Error())
		return narrative
	}

	n.log.WithFields(logrus.Fields{"provider": narrative.Provider, "kind": kind, "tokens": resp.TokensUsed}).Debug("llm generation complete")

	narrative.Enabled = true
	narrative.Model = resp.Model
	narrative.Text = resp.Text
	return narrative
}
