package matching

import (
	"testing"

	"trackmycareer/internal/catalog"
)

func TestClassifyGaps(t *testing.T) {
	cat := testCatalog()
	vocab := catalog.NewVocabulary(cat)
	cfg := DefaultScoring()

	required := cat.Skills("Data Analyst")
	possessed := []string{"python", "sql", "data clean", "react"}

	gaps := ClassifyGaps(vocab, required, possessed, cfg)

	if contains(gaps.Critical, "Python") || contains(gaps.Critical, "Sql") {
		t.Fatalf("possessed skills must not be critical: %v", gaps.Critical)
	}
	if !contains(gaps.Critical, "Tableau") || !contains(gaps.Critical, "Data Cleaning") {
		t.Fatalf("missing required skills must be critical: %v", gaps.Critical)
	}
	// "data clean" sits in the moderate similarity band to "data cleaning"
	if !contains(gaps.Moderate, "Data Cleaning") {
		t.Fatalf("expected Data Cleaning in moderate gaps: %v", gaps.Moderate)
	}
	// react is a known skill outside the requirement set
	if !contains(gaps.Minor, "React") {
		t.Fatalf("expected React in minor gaps: %v", gaps.Minor)
	}
	if contains(gaps.Minor, "Data Clean") {
		t.Fatalf("unknown terms must not be minor gaps: %v", gaps.Minor)
	}
}

func TestClassifyGapsEmptyInputs(t *testing.T) {
	vocab := catalog.NewVocabulary(testCatalog())
	gaps := ClassifyGaps(vocab, nil, nil, DefaultScoring())

	if gaps.Critical == nil || gaps.Moderate == nil || gaps.Minor == nil {
		t.Fatalf("gap slices must be empty, not nil: %+v", gaps)
	}
	if len(gaps.Critical)+len(gaps.Moderate)+len(gaps.Minor) != 0 {
		t.Fatalf("expected no gaps, got %+v", gaps)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
