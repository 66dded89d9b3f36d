package lexicon

// StyleStopWords are excluded from the most-common word ranking
var StyleStopWords = toSet([]string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"is", "are", "was", "were", "be", "been", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must", "can",
	"this", "that", "these", "those", "i", "you", "he", "she", "it", "we", "they",
	"me", "him", "her", "us", "them", "my", "your", "his", "its", "our", "their", "a", "an",
})

// Formality word lists
var (
	Contractions = []string{
		"don't", "won't", "can't", "shouldn't", "wouldn't", "couldn't", "isn't", "aren't",
		"wasn't", "weren't", "haven't", "hasn't", "hadn't", "i'm", "you're", "he's", "she's",
		"it's", "we're", "they're", "i'll", "you'll", "he'll", "she'll", "it'll", "we'll", "they'll",
	}
	FormalWords = []string{
		"therefore", "however", "furthermore", "moreover", "consequently", "nevertheless",
		"nonetheless", "accordingly", "subsequently", "thus", "hence", "indeed", "certainly",
		"particularly", "specifically",
	}
	SlangWords = []string{
		"lol", "omg", "wtf", "tbh", "imo", "imho", "fyi", "btw", "afaik",
		"gonna", "wanna", "gotta", "kinda", "sorta", "yeah", "nah", "yep",
	}
)

// Communication style pattern lists
var (
	AssertivePhrases = []string{"i think", "i believe", "in my opinion", "clearly", "obviously", "definitely", "absolutely", "certainly", "must", "should"}
	PoliteStyle      = []string{"please", "thank you", "thanks", "sorry", "excuse me", "would you", "could you", "may i", "if you don't mind"}
	EnthusiasticWords = []string{"amazing", "awesome", "fantastic", "incredible", "love", "excited", "thrilled", "wonderful", "brilliant", "excellent"}
	AnalyticalWords   = []string{"analysis", "data", "research", "study", "evidence", "statistics", "conclusion", "hypothesis", "methodology"}
	StorytellingWords = []string{"story", "happened", "experience", "remember", "once", "suddenly", "then", "after", "before", "during"}
)

// ASCIIPunctuation is the set of ASCII punctuation characters
const ASCIIPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
