package utils

import (
	"regexp"
	"strings"
)

var (
	tokenPattern = regexp.MustCompile(`[a-z0-9]+`)
	stopwords    = map[string]struct{}{
		"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {},
		"by": {}, "for": {}, "from": {}, "had": {}, "has": {}, "have": {}, "he": {},
		"her": {}, "hi": {}, "him": {}, "his": {}, "i": {}, "if": {}, "in": {}, "is": {},
		"it": {}, "its": {}, "me": {}, "my": {}, "no": {}, "not": {}, "of": {}, "on": {},
		"or": {}, "our": {}, "please": {}, "regards": {}, "she": {}, "so": {}, "thanks": {},
		"that": {}, "the": {}, "their": {}, "them": {}, "there": {}, "they": {}, "this": {},
		"to": {}, "us": {}, "was": {}, "we": {}, "were": {}, "will": {}, "with": {},
		"would": {}, "you": {}, "your": {},
	}
)

// Tokenize lowercases text and splits it into alphanumeric tokens. Duplicates
// are kept in order so callers can count frequencies.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// ExtractMeaningfulTokens tokenizes text, removes stopwords and single-letter
// tokens, and deduplicates while preserving order.
func ExtractMeaningfulTokens(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tokens))
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) == 1 && (token[0] < '0' || token[0] > '9') {
			continue
		}
		if _, isStopword := stopwords[token]; isStopword {
			continue
		}
		if _, exists := seen[token]; exists {
			continue
		}
		seen[token] = struct{}{}
		result = append(result, token)
	}
	return result
}
