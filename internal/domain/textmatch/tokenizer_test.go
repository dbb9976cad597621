package textmatch

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   \t\n", []string{}},
		{"punctuation only", "...!?--", []string{}},
		{"lowercases", "React TypeScript", []string{"react", "typescript"}},
		{"splits on punctuation", "node.js, ui/ux", []string{"node", "js", "ui", "ux"}},
		{"keeps digits", "python3 web2", []string{"python3", "web2"}},
		{"mixed separators", "a-b_c d,e", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	in := "Senior Backend Engineer (Go, PostgreSQL)"
	first := Tokenize(in)
	second := Tokenize(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on repeated calls: %v vs %v", first, second)
	}
}
