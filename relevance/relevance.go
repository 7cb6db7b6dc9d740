package relevance

import "strings"

const maxScore = 10

// intentPhrases mark posts that read like a question or a request for
// suggestions, which is what the monitor is hunting for.
var intentPhrases = []string{"?", "how to", "looking for", "recommend"}

// Score rates how relevant a post is to the configured keywords on a 0-10
// scale. Each distinct keyword found in the title or body adds 3 points;
// repeated occurrences of the same keyword do not stack. Question-like posts
// get a flat 2-point bonus. The result is capped at 10.
func Score(title, body string, keywords []string) int {
	text := strings.ToLower(title + " " + body)

	score := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			score += 3
		}
	}

	for _, phrase := range intentPhrases {
		if strings.Contains(text, phrase) {
			score += 2
			break
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
