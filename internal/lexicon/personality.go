package lexicon

// Trait names in fixed enumeration order
const (
	Openness          = "openness"
	Conscientiousness = "conscientiousness"
	Extraversion      = "extraversion"
	Agreeableness     = "agreeableness"
	Neuroticism       = "neuroticism"
)

// Trait is one Big Five dimension with its keyword categories and score multiplier
type Trait struct {
	Name       string
	Multiplier float64
	Categories []Category
}

// Traits in enumeration order
var Traits = []Trait{
	{
		Name:       Openness,
		Multiplier: 10,
		Categories: []Category{
			{"creativity", []string{"creative", "innovative", "original", "artistic", "imagination", "design", "art", "music"}},
			{"curiosity", []string{"curious", "wonder", "explore", "discover", "learn", "research", "investigate", "question"}},
			{"intellectual", []string{"philosophy", "theory", "concept", "abstract", "complex", "analysis", "intellectual", "academic"}},
			{"novelty", []string{"new", "different", "unique", "unusual", "strange", "weird", "interesting", "fascinating"}},
			{"change", []string{"change", "transform", "evolve", "adapt", "experiment", "try", "alternative", "variety"}},
		},
	},
	{
		Name:       Conscientiousness,
		Multiplier: 8,
		Categories: []Category{
			{"organization", []string{"organize", "plan", "schedule", "structure", "system", "method", "order", "arrange"}},
			{"discipline", []string{"discipline", "control", "focus", "dedicated", "committed", "persistent", "determined"}},
			{"goal_oriented", []string{"goal", "objective", "target", "aim", "achieve", "accomplish", "complete", "finish"}},
			{"responsibility", []string{"responsible", "duty", "obligation", "reliable", "dependable", "accountable"}},
			{"detail_oriented", []string{"detail", "careful", "thorough", "precise", "accurate", "exact", "specific", "meticulous"}},
		},
	},
	{
		Name:       Extraversion,
		Multiplier: 6,
		Categories: []Category{
			{"social", []string{"friends", "party", "social", "people", "group", "team", "community", "together"}},
			{"assertive", []string{"confident", "assert", "lead", "direct", "bold", "strong", "powerful", "dominant"}},
			{"energy", []string{"excited", "enthusiastic", "energetic", "active", "dynamic", "vibrant", "lively"}},
			{"communication", []string{"talk", "speak", "discuss", "share", "tell", "communicate", "express", "voice"}},
			{"positive_emotion", []string{"happy", "joy", "fun", "great", "awesome", "amazing", "fantastic", "wonderful"}},
		},
	},
	{
		Name:       Agreeableness,
		Multiplier: 7,
		Categories: []Category{
			{"cooperative", []string{"agree", "cooperate", "collaborate", "together", "team", "help", "support", "assist"}},
			{"empathy", []string{"understand", "feel", "empathy", "compassion", "care", "concern", "sympathy", "sorry"}},
			{"positive_social", []string{"kind", "nice", "friendly", "warm", "gentle", "considerate", "thoughtful"}},
			{"trust", []string{"trust", "honest", "sincere", "genuine", "authentic", "reliable", "faithful"}},
			{"harmony", []string{"peace", "harmony", "balance", "calm", "smooth", "pleasant", "comfortable"}},
		},
	},
	{
		Name:       Neuroticism,
		Multiplier: 8,
		Categories: []Category{
			{"anxiety", []string{"anxious", "worried", "nervous", "stress", "panic", "fear", "scared", "afraid"}},
			{"negative_emotion", []string{"sad", "depressed", "upset", "angry", "frustrated", "annoyed", "irritated"}},
			{"instability", []string{"unstable", "chaotic", "confused", "overwhelmed", "lost", "helpless", "hopeless"}},
			{"self_doubt", []string{"doubt", "insecure", "uncertain", "unsure", "question", "worry", "concern"}},
			{"catastrophic", []string{"disaster", "terrible", "awful", "horrible", "worst", "nightmare", "crisis"}},
		},
	},
}

// Structural signal inputs
var (
	SecondPersonWords     = []string{"you", "anyone", "everyone", "somebody"}
	GreetingPrefixes      = []string{"hey", "hi", "hello"}
	PolitePhrases         = []string{"please", "thank you", "thanks", "sorry", "excuse me", "pardon", "appreciate"}
	ConfrontationalWords  = []string{"wrong", "stupid", "idiot", "hate", "terrible", "awful"}
)

// TraitDescriptions maps trait -> level -> description
var TraitDescriptions = map[string]map[string]string{
	Openness: {
		"high":   "Creative, curious, and open to new experiences",
		"medium": "Moderately open to new ideas and experiences",
		"low":    "Prefers familiar routines and conventional approaches",
	},
	Conscientiousness: {
		"high":   "Organized, disciplined, and goal-oriented",
		"medium": "Reasonably organized with moderate self-discipline",
		"low":    "More spontaneous and flexible in approach",
	},
	Extraversion: {
		"high":   "Outgoing, energetic, and socially engaged",
		"medium": "Balanced between social and solitary activities",
		"low":    "More reserved and prefers quieter environments",
	},
	Agreeableness: {
		"high":   "Cooperative, trusting, and empathetic",
		"medium": "Generally cooperative with balanced skepticism",
		"low":    "More competitive and skeptical of others",
	},
	Neuroticism: {
		"high":   "More emotionally reactive and stress-sensitive",
		"medium": "Moderate emotional stability",
		"low":    "Emotionally stable and resilient",
	},
}
