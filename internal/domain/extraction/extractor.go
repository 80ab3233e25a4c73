package extraction

import (
	"regexp"
	"sort"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/pkg/textutil"
)

// symbolTokens catches language names that word-boundary matching mishandles.
var symbolTokens = regexp.MustCompile(`c\+\+|c#|f#`)

// Extractor detects which vocabulary skills occur in free text. It is a pure
// function of its input plus the immutable vocabulary.
type Extractor struct {
	vocab          *catalog.Vocabulary
	fuzzyThreshold float64
}

func New(vocab *catalog.Vocabulary, fuzzyThreshold float64) *Extractor {
	if fuzzyThreshold <= 0 || fuzzyThreshold > 1 {
		fuzzyThreshold = 0.86
	}
	return &Extractor{vocab: vocab, fuzzyThreshold: fuzzyThreshold}
}

// Extract returns the canonical lowercase skill terms found in text, sorted
// alphabetically. Empty input yields an empty, non-nil slice.
func (e *Extractor) Extract(text string) []string {
	found := make(map[string]struct{})
	norm := textutil.Normalize(text)
	if norm != "" {
		e.matchPhrases(norm, found)
		e.matchSymbolTokens(norm, found)
		e.matchFuzzyTokens(norm, found)
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// matchPhrases scans vocabulary terms longest first, so a phrase like
// "power bi" claims its occurrence before any component token can.
func (e *Extractor) matchPhrases(norm string, found map[string]struct{}) {
	for _, term := range e.vocab.Terms() {
		if len(term) < 2 {
			continue
		}
		if !textutil.ContainsWord(norm, term) {
			continue
		}
		if canon, ok := e.vocab.Canonical(term); ok {
			found[canon] = struct{}{}
		}
	}
}

func (e *Extractor) matchSymbolTokens(norm string, found map[string]struct{}) {
	for _, hit := range symbolTokens.FindAllString(norm, -1) {
		if canon, ok := e.vocab.Canonical(hit); ok {
			found[canon] = struct{}{}
			continue
		}
		found[hit] = struct{}{}
	}
}

// matchFuzzyTokens catches minor misspellings: any residual token close
// enough to a vocabulary term counts as that term.
func (e *Extractor) matchFuzzyTokens(norm string, found map[string]struct{}) {
	terms := e.vocab.CanonicalTerms()
	for _, tok := range textutil.Tokens(norm, 3) {
		if canon, ok := e.vocab.Canonical(tok); ok {
			found[canon] = struct{}{}
			continue
		}

		best := ""
		bestSim := 0.0
		for _, term := range terms {
			sim := textutil.Similarity(tok, term)
			if sim > bestSim {
				bestSim = sim
				best = term
			}
		}
		if best != "" && bestSim >= e.fuzzyThreshold {
			found[best] = struct{}{}
		}
	}
}

