package skills

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSingleWordVerbatim(t *testing.T) {
	e := NewExtractor(DefaultLexicon())

	got := e.Extract("Experienced React developer, strong in Docker and AWS.")
	assert.Equal(t, []string{"react", "aws", "docker"}, got)
}

func TestExtractContainmentNotAdjacency(t *testing.T) {
	e := NewExtractor(DefaultLexicon())

	got := e.Extract("I have deep knowledge and learning experience")
	assert.Contains(t, got, "deep learning")
}

func TestExtractCompoundEntry(t *testing.T) {
	e := NewExtractor(DefaultLexicon())

	got := e.Extract("Backend services in Node.js behind GraphQL")
	assert.Contains(t, got, "node.js")
	assert.Contains(t, got, "graphql")
}

func TestExtractLexiconOrderAndSetSemantics(t *testing.T) {
	e := NewExtractor(Lexicon{Version: 1, Entries: []string{"python", "react", "sql"}})

	// document order differs from lexicon order, terms repeat
	got := e.Extract("sql react sql python react")
	assert.Equal(t, []string{"python", "react", "sql"}, got)
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(DefaultLexicon())

	got := e.Extract("")
	assert.Empty(t, got)
}

func TestExtractNoMatches(t *testing.T) {
	e := NewExtractor(DefaultLexicon())

	got := e.Extract("carpentry and plumbing")
	assert.Empty(t, got)
}

func TestLoadLexiconDefault(t *testing.T) {
	lex, err := LoadLexicon("")
	require.NoError(t, err)
	if !reflect.DeepEqual(lex, DefaultLexicon()) {
		t.Fatalf("empty path should yield the default lexicon")
	}
}

func TestLoadLexiconFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := "version: 3\nskills:\n  - Go\n  - \" Rust \"\n  - \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Version)
	assert.Equal(t, []string{"go", "rust"}, lex.Entries)
}

func TestLoadLexiconEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nskills: []\n"), 0o600))

	_, err := LoadLexicon(path)
	require.Error(t, err)
}
