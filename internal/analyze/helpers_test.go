package analyze

import (
	"fmt"
	"math"
	"strings"

	"github.com/ppiankov/persona/internal/model"
)

func postsOnly(texts ...string) model.ContentSet {
	set := model.NewContentSet()
	for i, text := range texts {
		set[model.SectionPosts] = append(set[model.SectionPosts], model.ContentItem{
			Text:          text,
			SourceLocator: fmt.Sprintf("/r/test/comments/%d/", i),
		})
	}
	return set
}

func sampleSet() model.ContentSet {
	return model.ContentSet{
		model.SectionPosts: {
			{Text: "I love this amazing great day! Learning Go has been a creative experience.", SourceLocator: "https://www.reddit.com/r/golang/comments/1/"},
			{Text: "Here is my plan:\n1. organize the schedule\n2. finish the goal\n3. review the details carefully and complete it", SourceLocator: "https://www.reddit.com/r/productivity/comments/2/"},
		},
		model.SectionComments: {
			{Text: "Thanks u/gopher, I agree with you. Great job on the release!", SourceLocator: "https://www.reddit.com/r/golang/comments/1/c1/"},
			{Text: "Why do you think the scheduler is WRONG?? I worry it is a disaster...", SourceLocator: "https://www.reddit.com/r/golang/comments/3/c2/"},
			{Text: "hey, can someone help me with the app? I need help with the data layer", SourceLocator: "https://www.reddit.com/r/learnprogramming/comments/4/c3/"},
		},
		"saved": {
			{Text: "A long story about what happened during my trip, an experience I remember fondly.", SourceLocator: "https://www.reddit.com/r/travel/comments/5/"},
		},
	}
}

func stuffedSet() model.ContentSet {
	stuffed := strings.Repeat("creative curious plan goal friends happy agree kind anxious disaster great job i can help collaborate hello thanks please u/x ?!! WOW ... ", 200)
	return postsOnly(stuffed, stuffed)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
