// Package intent decides whether a free-text assistant message asks for a
// rewrite of the selected text or for a conversational answer.
package intent

import (
	"strings"

	"github.com/joestump/speechwriter/internal/speech"
)

// rewriteKeywords are matched as plain substrings of the lower-cased message.
// A keyword anywhere in the text wins, so "can you fix dinner plans too" is a
// rewrite. This is a heuristic, not an intent model.
var rewriteKeywords = []string{
	"rewrite", "rephrase", "change", "modify", "edit", "improve",
	"make it", "update", "revise", "reword", "restructure", "fix",
	"make this", "turn this into", "convert", "transform",
}

// Classify returns speech.ModeRewrite when text contains any rewrite keyword,
// case-insensitively, and speech.ModeChat otherwise.
func Classify(text string) speech.Mode {
	if _, ok := Keyword(text); ok {
		return speech.ModeRewrite
	}
	return speech.ModeChat
}

// Keyword reports the first rewrite keyword found in text.
func Keyword(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, kw := range rewriteKeywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}
