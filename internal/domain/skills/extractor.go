package skills

import (
	"hirechain/internal/domain/textmatch"
)

// Extractor matches a lexicon against free text. Safe for concurrent use;
// the lexicon is never mutated after construction.
type Extractor struct {
	lexicon Lexicon
	parts   [][]string
}

func NewExtractor(lex Lexicon) *Extractor {
	parts := make([][]string, len(lex.Entries))
	for i, entry := range lex.Entries {
		parts[i] = textmatch.Tokenize(entry)
	}
	return &Extractor{lexicon: lex, parts: parts}
}

// Extract returns the lexicon entries whose constituent words all appear
// somewhere among the document's tokens. Multi-word and compound entries
// match on containment, not adjacency: a document holding "deep" and
// "learning" anywhere matches "deep learning". Output follows lexicon
// order, one occurrence per matched entry.
func (e *Extractor) Extract(text string) []string {
	tokens := textmatch.Tokenize(text)
	present := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		present[t] = struct{}{}
	}

	out := make([]string, 0, len(e.lexicon.Entries))
	for i, entry := range e.lexicon.Entries {
		if len(e.parts[i]) == 0 {
			continue
		}
		matched := true
		for _, p := range e.parts[i] {
			if _, ok := present[p]; !ok {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, entry)
		}
	}
	return out
}

func (e *Extractor) LexiconVersion() int {
	return e.lexicon.Version
}
