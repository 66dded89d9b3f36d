// Package lexicon holds the fixed keyword tables used by the analyzers.
// Every table is ordered so that iteration and tie-breaks are reproducible.
package lexicon

// Category is a named keyword list
type Category struct {
	Name  string
	Terms []string
}

// Positive and negative sentiment words
var (
	PositiveWords = []string{"love", "great", "awesome", "amazing", "excellent", "fantastic", "wonderful", "good", "best", "happy", "excited", "perfect"}
	NegativeWords = []string{"hate", "terrible", "awful", "bad", "worst", "horrible", "disgusting", "annoying", "frustrated", "angry", "disappointed"}
)

// Emotions in fixed reporting order
var Emotions = []Category{
	{"joy", []string{"happy", "excited", "thrilled", "delighted", "cheerful", "joyful"}},
	{"anger", []string{"angry", "furious", "mad", "irritated", "annoyed", "frustrated"}},
	{"sadness", []string{"sad", "depressed", "disappointed", "upset", "down", "blue"}},
	{"fear", []string{"scared", "afraid", "worried", "anxious", "nervous", "terrified"}},
	{"surprise", []string{"surprised", "shocked", "amazed", "astonished", "stunned"}},
	{"disgust", []string{"disgusted", "revolted", "sick", "nauseated", "repulsed"}},
}

// Behavioral pattern phrase lists
var (
	Interrogatives     = []string{"how", "what", "why", "when", "where", "who"}
	AdvicePhrases      = []string{"you should", "try this", "i recommend", "advice"}
	StoryPhrases       = []string{"story", "happened", "experience"}
	DebatePhrases      = []string{"disagree", "wrong", "actually", "however", "but"}
	SupportPhrases     = []string{"agree", "exactly", "this", "support", "yes"}
	StorytellerMinSize = 200
)
