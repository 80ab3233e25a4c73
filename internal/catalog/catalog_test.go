package catalog

import (
	"reflect"
	"testing"
)

func TestNewDedupesAndLowercasesSkills(t *testing.T) {
	cat := New([]Role{
		{Name: " Data Analyst ", Skills: []string{"Python", "SQL", "sql", " "}},
		{Name: "Data Analyst", Skills: []string{"ignored duplicate"}},
		{Name: "", Skills: []string{"dropped"}},
	})

	if cat.Len() != 1 {
		t.Fatalf("expected 1 role, got %d", cat.Len())
	}
	want := []string{"python", "sql"}
	if got := cat.Skills("Data Analyst"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Skills = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	raw := []byte(`{
		"Frontend Developer": {"skills": ["React", "CSS"], "projects": [{"title": "Portfolio", "description": "d", "tech_stack": ["react"]}]},
		"Data Analyst": {"skills": ["SQL"]}
	}`)

	cat, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// names are sorted so file ordering never changes behavior
	want := []string{"Data Analyst", "Frontend Developer"}
	if got := cat.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}

	role, ok := cat.Get("Frontend Developer")
	if !ok {
		t.Fatalf("expected Frontend Developer")
	}
	if len(role.Projects) != 1 || role.Projects[0].Title != "Portfolio" {
		t.Fatalf("unexpected projects: %+v", role.Projects)
	}
}

func TestParseRejectsEmptyAndMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{}`)); err == nil {
		t.Fatalf("expected error for empty database")
	}
	if _, err := Parse([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for malformed input")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("does/not/exist.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFallback(t *testing.T) {
	cat := Fallback()
	if _, ok := cat.Get(FallbackRoleKey); !ok {
		t.Fatalf("fallback catalog must contain %q", FallbackRoleKey)
	}
	if len(cat.Skills(FallbackRoleKey)) == 0 {
		t.Fatalf("fallback role must carry skills")
	}
}

func TestVocabularyCanonical(t *testing.T) {
	cat := New([]Role{{Name: "Data Analyst", Skills: []string{"dbt"}}})
	v := NewVocabulary(cat)

	if _, ok := v.Canonical("dbt"); !ok {
		t.Fatalf("catalog skill must be part of the vocabulary")
	}
	if got, ok := v.Canonical("js"); !ok || got != "javascript" {
		t.Fatalf("alias js: got %q, %v", got, ok)
	}
	if got, ok := v.Canonical("powerbi"); !ok || got != "power bi" {
		t.Fatalf("alias powerbi: got %q, %v", got, ok)
	}
	if _, ok := v.Canonical("definitely not a skill"); ok {
		t.Fatalf("unknown term must not resolve")
	}
}

func TestCategorize(t *testing.T) {
	got := Categorize([]string{"python", "Git", "communication", "statistics", ""})

	if !reflect.DeepEqual(got["technical"], []string{"python"}) {
		t.Fatalf("technical = %v", got["technical"])
	}
	if !reflect.DeepEqual(got["tools"], []string{"git"}) {
		t.Fatalf("tools = %v", got["tools"])
	}
	if !reflect.DeepEqual(got["soft"], []string{"communication"}) {
		t.Fatalf("soft = %v", got["soft"])
	}
	if !reflect.DeepEqual(got["domain"], []string{"statistics"}) {
		t.Fatalf("domain = %v", got["domain"])
	}

	empty := Categorize(nil)
	for _, c := range []string{"technical", "tools", "soft", "domain"} {
		if empty[c] == nil {
			t.Fatalf("bucket %s must be an empty slice", c)
		}
	}
}

func TestVocabularyTermsLongestFirst(t *testing.T) {
	v := NewVocabulary(nil)
	terms := v.Terms()
	if len(terms) < 2 {
		t.Fatalf("expected a populated vocabulary")
	}
	for i := 1; i < len(terms); i++ {
		if len(terms[i]) > len(terms[i-1]) {
			t.Fatalf("terms not longest-first at %d: %q after %q", i, terms[i], terms[i-1])
		}
	}
}
