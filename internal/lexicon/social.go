package lexicon

// Reply behavior phrase lists
var (
	ReplyPhrases        = []string{"thanks for", "thank you for", "i agree", "you're right", "good point", "i disagree", "actually", "however", "but", "on the other hand"}
	SupportivePhrases   = []string{"great job", "well done", "awesome", "amazing", "love this", "this is great", "fantastic", "brilliant", "perfect", "exactly"}
	DisagreementPhrases = []string{"i disagree", "wrong", "not true", "actually no", "that's incorrect", "i don't think", "not really", "i doubt", "unlikely", "probably not"}
	QuestionStarters    = []string{"what do you", "how do you", "why do you", "when did you", "where did you", "who do you", "have you ever", "do you think"}
	ReplyGreetings      = []string{"hey ", "hi ", "hello "}
)

// Interaction phrase lists
var (
	InteractionIndicators = []string{"@", "u/", "?", "reply", "response"}
	HelpSeeking           = []string{"can someone help", "need help", "please help", "how do i", "what should i do"}
	HelpOffering          = []string{"i can help", "let me help", "here's how", "try this", "i recommend"}
	CollaborationPhrases  = []string{"let's work together", "we should", "together we can", "team up", "collaborate"}
)

// SocialCues in reporting order
var SocialCues = []Category{
	{"greetings", []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
	{"gratitude", []string{"thank you", "thanks", "appreciate", "grateful"}},
	{"apologies", []string{"sorry", "apologize", "my bad", "excuse me"}},
	{"politeness", []string{"please", "would you", "could you", "if you don't mind"}},
}
