// Package research builds precedent search links. Nothing here touches the
// network.
package research

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	indianKanoonSearch = "https://indiankanoon.org/search/?formInput="
	googleSearch       = "https://www.google.com/search"
	quickFactsPrefix   = 50
)

// Link is one clickable search.
type Link struct {
	Phrase string `json:"phrase"`
	URL    string `json:"url"`
}

// QuickLink is the Indian Kanoon search for the petition type plus the start
// of the facts, scoped to Kerala.
func QuickLink(petitionType, facts string) string {
	q := fmt.Sprintf("%s %s Kerala", petitionType, truncateRunes(facts, quickFactsPrefix))
	return indianKanoonSearch + url.QueryEscape(q)
}

// YearRangeFilter returns the engine's custom-date-range filter for whole
// years. A zero bound is left open; both zero means no filter.
func YearRangeFilter(from, to int) string {
	if from == 0 && to == 0 {
		return ""
	}
	parts := []string{"cdr:1"}
	if from > 0 {
		parts = append(parts, fmt.Sprintf("cd_min:1/1/%d", from))
	}
	if to > 0 {
		parts = append(parts, fmt.Sprintf("cd_max:12/31/%d", to))
	}
	return strings.Join(parts, ",")
}

// SearchURL builds one engine query restricted to domain, with an optional
// date filter from YearRangeFilter.
func SearchURL(phrase, domain, yearFilter string) string {
	q := phrase
	if domain != "" {
		q = fmt.Sprintf("%s site:%s", phrase, domain)
	}
	v := url.Values{}
	v.Set("q", q)
	if yearFilter != "" {
		v.Set("tbs", yearFilter)
	}
	return googleSearch + "?" + v.Encode()
}

// BuildLinks maps phrases to links, skipping blanks.
func BuildLinks(phrases []string, domain, yearFilter string) []Link {
	links := make([]Link, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		links = append(links, Link{Phrase: p, URL: SearchURL(p, domain, yearFilter)})
	}
	return links
}

// ParsePhrases reads a model reply with one phrase per line, dropping list
// markers, quotes and duplicates, and keeps at most limit phrases.
func ParsePhrases(reply string, limit int) []string {
	seen := make(map[string]bool)
	var phrases []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.Trim(line, `"'`+"`")
		line = strings.TrimSpace(line)
		if line == "" || seen[strings.ToLower(line)] {
			continue
		}
		seen[strings.ToLower(line)] = true
		phrases = append(phrases, line)
		if len(phrases) == limit {
			break
		}
	}
	return phrases
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
