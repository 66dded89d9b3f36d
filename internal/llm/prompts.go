package llm

import "fmt"

const systemPrompt = "You are an expert in behavioral analysis of online communities. " +
	"Base every statement on the supplied posts and comments and do not invent facts about the user."

// PersonaPrompt asks for a persona write-up of one account
func PersonaPrompt(username, content string) string {
	return fmt.Sprintf(`Build a detailed user persona for the Reddit user %s from the content below.

Cover:
1. **Demographics & Background** (only what the content supports)
2. **Interests & Hobbies**
3. **Personality Traits**
4. **Motivations & Goals**
5. **Frustrations & Pain Points**
6. **Communication Style**

For every characteristic, cite the Source link of the post or comment it is drawn from.

USER CONTENT:
%s
`, username, content)
}

// ComparisonPrompt asks for a six-section comparison of two accounts
func ComparisonPrompt(username1, content1, username2, content2 string) string {
	return fmt.Sprintf(`Compare these two Reddit users and provide a detailed comparison report:

USER 1 (%s):
%s

USER 2 (%s):
%s

Generate a comparison report with:
1. **Common Interests & Similarities**
2. **Key Differences in Personality**
3. **Communication Style Comparison**
4. **Engagement Pattern Differences**
5. **Subreddit Preferences Comparison**
6. **Overall Compatibility Assessment**

For each section, cite specific examples from their posts/comments.
`, username1, content1, username2, content2)
}
