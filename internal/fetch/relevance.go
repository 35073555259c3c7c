package fetch

import "strings"

// Matched returns the keywords found in text, case-insensitive substring
// match. An empty keyword set matches nothing: a category misconfigured
// without keywords yields zero live signals rather than all of them.
func Matched(text string, keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	var hits []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			hits = append(hits, kw)
		}
	}
	return hits
}

// Relevant reports whether text matches at least one keyword.
func Relevant(text string, keywords []string) bool {
	return len(Matched(text, keywords)) > 0
}
