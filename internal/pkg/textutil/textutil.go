package textutil

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Normalize lowercases text and collapses it to a single-spaced form while
// keeping the characters that carry meaning in skill tokens: + # - . '
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := true

	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			lastWasSpace = false
		case r == '+' || r == '#' || r == '-' || r == '.' || r == '\'':
			b.WriteRune(r)
			lastWasSpace = false
		default:
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// Tokens splits text into unique lowercase runs of letters, digits, '+' and
// '#' with at least minLen runes, preserving first-seen order.
func Tokens(input string, minLen int) []string {
	if minLen <= 0 {
		minLen = 3
	}

	out := make([]string, 0, 16)
	seen := make(map[string]struct{}, 16)
	var word strings.Builder

	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) < minLen {
			return
		}
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	for _, r := range strings.ToLower(input) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' {
			word.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return out
}

// ContainsWord reports a whole-word (or whole-phrase) occurrence of term in
// text. Boundaries are any rune that is not a letter or digit, which keeps
// tokens like "c++" and phrases like "power bi" matchable.
func ContainsWord(text, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; start+len(term) <= len(text); {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		if wordBoundary(text, idx-1) && wordBoundary(text, idx+len(term)) {
			return true
		}
		start = idx + 1
	}
	return false
}

func wordBoundary(s string, idx int) bool {
	if idx < 0 || idx >= len(s) {
		return true
	}
	r := rune(s[idx])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Similarity returns a normalized edit similarity in [0, 1]: identical
// strings score 1, fully dissimilar strings score 0.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}

	dist := levenshtein.ComputeDistance(a, b)
	sim := 1.0 - float64(dist)/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}

// TitleCase uppercases the first letter of every word, where a word starts
// after any non-letter rune ("power bi" -> "Power Bi", "ci/cd" -> "Ci/Cd").
func TitleCase(s string) string {
	b := strings.Builder{}
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// symbol-bearing language names that must not be re-cased
var verbatimSkills = map[string]struct{}{
	"c++": {},
	"c#":  {},
	"f#":  {},
}

// SkillLabel renders a canonical lowercase skill term for display.
func SkillLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if _, ok := verbatimSkills[strings.ToLower(s)]; ok {
		return strings.ToLower(s)
	}
	return TitleCase(s)
}

// SkillLabels renders every term, keeping the caller's ordering.
func SkillLabels(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, SkillLabel(t))
	}
	return out
}
