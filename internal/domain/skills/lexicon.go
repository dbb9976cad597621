package skills

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon is the fixed catalog of recognized skill terms. It is loaded once
// at startup and shared read-only across requests.
type Lexicon struct {
	Version int      `yaml:"version"`
	Entries []string `yaml:"skills"`
}

func DefaultLexicon() Lexicon {
	return Lexicon{
		Version: 1,
		Entries: []string{
			"react", "typescript", "node.js", "python", "machine learning",
			"deep learning", "tensorflow", "pytorch", "data analysis", "aws",
			"docker", "sql", "graphql", "mongodb", "communication", "teamwork",
			"leadership", "ui/ux", "next.js",
		},
	}
}

// LoadLexicon reads a lexicon from a YAML file. An empty path yields the
// built-in default.
func LoadLexicon(path string) (Lexicon, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultLexicon(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("read lexicon file: %w", err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(raw, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("parse lexicon file: %w", err)
	}

	entries := make([]string, 0, len(lex.Entries))
	for _, e := range lex.Entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return Lexicon{}, fmt.Errorf("lexicon file %s contains no skills", path)
	}
	lex.Entries = entries

	return lex, nil
}
