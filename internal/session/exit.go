package session

import "strings"

// exitKeywords is the closed set of words that end the interview.
var exitKeywords = map[string]struct{}{
	"exit": {},
	"quit": {},
	"bye":  {},
	"stop": {},
	"end":  {},
}

// Farewell is the fixed assistant turn appended when the candidate
// ends the interview with an exit keyword.
const Farewell = "Thank you for your time! We will contact you with next steps."

// IsExit reports whether text is an exit keyword, matched
// case-insensitively after trimming surrounding whitespace. The check
// runs before any model invocation so ending a session never costs a
// network call.
func IsExit(text string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	_, ok := exitKeywords[cleaned]
	return ok
}
