package lexicon

// TopicCategories are the keyword-strategy categories in enumeration order
var TopicCategories = []Category{
	{"Technology", []string{"tech", "software", "computer", "programming", "code", "app", "digital", "ai", "machine learning", "data"}},
	{"Gaming", []string{"game", "gaming", "play", "player", "console", "pc", "xbox", "playstation", "nintendo", "steam"}},
	{"Sports", []string{"sport", "team", "player", "game", "match", "season", "league", "football", "basketball", "soccer"}},
	{"Entertainment", []string{"movie", "film", "show", "tv", "series", "actor", "music", "song", "album", "concert"}},
	{"Politics", []string{"political", "government", "election", "vote", "policy", "president", "congress", "law", "rights"}},
	{"Finance", []string{"money", "investment", "stock", "market", "crypto", "bitcoin", "trading", "economy", "financial"}},
	{"Health", []string{"health", "medical", "doctor", "hospital", "medicine", "fitness", "exercise", "diet", "wellness"}},
	{"Education", []string{"school", "university", "student", "teacher", "education", "learning", "study", "course", "degree"}},
	{"Relationships", []string{"relationship", "dating", "marriage", "family", "friend", "love", "partner", "couple"}},
	{"Lifestyle", []string{"life", "lifestyle", "hobby", "travel", "food", "cooking", "home", "fashion", "style"}},
}

// StopPhrases are filler n-grams dropped from key-phrase extraction
var StopPhrases = toSet([]string{"i think", "you know", "i mean", "i guess", "i feel", "i want", "i need"})

// EnglishStopWords is the stop list applied by the topic model vectorizer
var EnglishStopWords = toSet([]string{
	"a", "about", "above", "across", "after", "afterwards", "again", "against", "all", "almost",
	"alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "amoungst",
	"amount", "an", "and", "another", "any", "anyhow", "anyone", "anything", "anyway", "anywhere",
	"are", "around", "as", "at", "back", "be", "became", "because", "become", "becomes",
	"becoming", "been", "before", "beforehand", "behind", "being", "below", "beside", "besides", "between",
	"beyond", "bill", "both", "bottom", "but", "by", "call", "can", "cannot", "cant",
	"co", "con", "could", "couldnt", "cry", "de", "describe", "detail", "do", "done",
	"down", "due", "during", "each", "eg", "eight", "either", "eleven", "else", "elsewhere",
	"empty", "enough", "etc", "even", "ever", "every", "everyone", "everything", "everywhere", "except",
	"few", "fifteen", "fifty", "fill", "find", "fire", "first", "five", "for", "former",
	"formerly", "forty", "found", "four", "from", "front", "full", "further", "get", "give",
	"go", "had", "has", "hasnt", "have", "he", "hence", "her", "here", "hereafter",
	"hereby", "herein", "hereupon", "hers", "herself", "him", "himself", "his", "how", "however",
	"hundred", "i", "ie", "if", "in", "inc", "indeed", "interest", "into", "is",
	"it", "its", "itself", "keep", "last", "latter", "latterly", "least", "less", "ltd",
	"made", "many", "may", "me", "meanwhile", "might", "mill", "mine", "more", "moreover",
	"most", "mostly", "move", "much", "must", "my", "myself", "name", "namely", "neither",
	"never", "nevertheless", "next", "nine", "no", "nobody", "none", "noone", "nor", "not",
	"nothing", "now", "nowhere", "of", "off", "often", "on", "once", "one", "only",
	"onto", "or", "other", "others", "otherwise", "our", "ours", "ourselves", "out", "over",
	"own", "part", "per", "perhaps", "please", "put", "rather", "re", "same", "see",
	"seem", "seemed", "seeming", "seems", "serious", "several", "she", "should", "show", "side",
	"since", "sincere", "six", "sixty", "so", "some", "somehow", "someone", "something", "sometime",
	"sometimes", "somewhere", "still", "such", "system", "take", "ten", "than", "that", "the",
	"their", "them", "themselves", "then", "thence", "there", "thereafter", "thereby", "therefore", "therein",
	"thereupon", "these", "they", "thick", "thin", "third", "this", "those", "though", "three",
	"through", "throughout", "thru", "thus", "to", "together", "too", "top", "toward", "towards",
	"twelve", "twenty", "two", "un", "under", "until", "up", "upon", "us", "very",
	"via", "was", "we", "well", "were", "what", "whatever", "when", "whence", "whenever",
	"where", "whereafter", "whereas", "whereby", "wherein", "whereupon", "wherever", "whether", "which", "while",
	"whither", "who", "whoever", "whole", "whom", "whose", "why", "will", "with", "within",
	"without", "would", "yet", "you", "your", "yours", "yourself", "yourselves",
})
