// Package citation flags text that looks like it cites Indian case law.
// It only detects the shape of a citation; it never checks that one is real.
package citation

import "regexp"

// patterns cover the reporter styles the drafter most often invents:
// "(2023) 4 SCC 110", "AIR 2020 SC 1", "2021 KHC 55" and "2019 Ker LJ 7".
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`\(\d{4}\)\s*\d+\s+SCC\s+\d+`),
	regexp.MustCompile(`\bAIR\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{4}\s+KHC\s+\d+`),
	regexp.MustCompile(`\b\d{4}\s+Ker\.?\s*L\.?\s*J\.?\s+\d+`),
}

// Contains reports whether text holds at least one citation-shaped substring.
func Contains(text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Find returns every citation-shaped substring, in pattern order.
func Find(text string) []string {
	var found []string
	for _, p := range patterns {
		found = append(found, p.FindAllString(text, -1)...)
	}
	return found
}

// Verdict is the outcome of gating one draft.
type Verdict struct {
	Blocked bool
	Matches []string
}

// Gate blocks a draft that carries a citation-shaped substring while the
// session has no verified judgment to back it. Everything else passes.
func Gate(text string, verifiedCount int) Verdict {
	matches := Find(text)
	return Verdict{
		Blocked: len(matches) > 0 && verifiedCount == 0,
		Matches: matches,
	}
}
