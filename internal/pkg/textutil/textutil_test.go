package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Senior C++ Developer!", "senior c++ developer"},
		{"Python,  SQL\tand\nExcel", "python sql and excel"},
		{"Node.js / React", "node.js react"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("SQL sql c++ go spark, spark", 3)
	want := []string{"sql", "c++", "spark"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
}

func TestContainsWord(t *testing.T) {
	text := Normalize("Built dashboards in Power BI and JavaScript, plus C++ tooling.")

	if !ContainsWord(text, "power bi") {
		t.Fatalf("expected phrase match for %q in %q", "power bi", text)
	}
	if !ContainsWord(text, "c++") {
		t.Fatalf("expected match for c++")
	}
	if ContainsWord(text, "java") {
		t.Fatalf("java must not match inside javascript")
	}
	if ContainsWord(text, "") {
		t.Fatalf("empty term must not match")
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("python", "python"); got != 1 {
		t.Fatalf("identical strings: got %v, want 1", got)
	}
	if got := Similarity("", "python"); got != 0 {
		t.Fatalf("empty operand: got %v, want 0", got)
	}
	if got := Similarity("kubernetes", "kuberntes"); got <= 0.85 {
		t.Fatalf("near-miss spelling: got %v, want > 0.85", got)
	}
	if got := Similarity("python", "tableau"); got >= 0.5 {
		t.Fatalf("dissimilar terms: got %v, want < 0.5", got)
	}
}

func TestSkillLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"c++", "c++"},
		{"C#", "c#"},
		{"power bi", "Power Bi"},
		{"sql", "Sql"},
		{"", ""},
	}
	for _, c := range cases {
		if got := SkillLabel(c.in); got != c.want {
			t.Fatalf("SkillLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
