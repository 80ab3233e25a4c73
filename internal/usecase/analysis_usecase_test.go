package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/domain/matching"
)

type fakeGenerator struct {
	extractJSON   string
	recommendJSON string
	err           error
}

func (f fakeGenerator) GenerateStructured(_ context.Context, prompt string) (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if strings.Contains(prompt, "career recommender") {
		if f.recommendJSON == "" {
			return nil, errors.New("no recommendation configured")
		}
		return json.RawMessage(f.recommendJSON), nil
	}
	if f.extractJSON == "" {
		return nil, errors.New("no extraction configured")
	}
	return json.RawMessage(f.extractJSON), nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Role{
		{Name: "Data Analyst", Skills: []string{
			"python", "sql", "pandas", "excel", "tableau",
			"power bi", "visualization", "statistics", "data cleaning", "etl",
		}},
		{Name: "Frontend Developer", Skills: []string{
			"react", "javascript", "html", "css", "typescript", "ui design",
		}},
		{Name: "General", Skills: []string{"communication", "problem solving", "documentation"}},
	})
}

func newTestUsecase(gen fakeGenerator) *Analysis {
	cat := testCatalog()
	return NewAnalysisUsecase(cat, catalog.NewVocabulary(cat), matching.DefaultScoring(), gen, nil)
}

func TestAnalyzeRequiresTargetRole(t *testing.T) {
	uc := newTestUsecase(fakeGenerator{err: errors.New("unused")})
	_, err := uc.Analyze(context.Background(), AnalyzeParams{ResumeText: "python"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeProviderFailureFallsBackToLocal(t *testing.T) {
	failing := newTestUsecase(fakeGenerator{err: errors.New("provider down")})
	disabled := NewAnalysisUsecase(testCatalog(), catalog.NewVocabulary(testCatalog()), matching.DefaultScoring(), nil, nil)

	params := AnalyzeParams{
		ResumeText: "Experienced with Python, SQL and Tableau dashboards",
		TargetRole: "Data Analyst",
	}

	got, err := failing.Analyze(context.Background(), params)
	if err != nil {
		t.Fatalf("provider failure must not fail the request: %v", err)
	}
	want, err := disabled.Analyze(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("failing provider must reproduce the deterministic result\n got: %+v\nwant: %+v", got, want)
	}
	if len(got.Skills) == 0 {
		t.Fatalf("local extraction must still find skills")
	}
	if got.SummaryText == "" || len(got.RoleRecommendations) == 0 {
		t.Fatalf("expected complete result, got %+v", got)
	}
}

func TestAnalyzeProviderSkillsAreAdditive(t *testing.T) {
	uc := newTestUsecase(fakeGenerator{
		extractJSON:   `["Python", "Stakeholder Management"]`,
		recommendJSON: `[]`,
	})

	res, err := uc.Analyze(context.Background(), AnalyzeParams{
		ResumeText: "Worked with SQL pipelines",
		TargetRole: "Data Analyst",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	joined := strings.Join(res.Skills, "|")
	if !strings.Contains(joined, "Sql") {
		t.Fatalf("local extraction result dropped: %v", res.Skills)
	}
	if !strings.Contains(joined, "Stakeholder Management") {
		t.Fatalf("provider skills must be unioned in: %v", res.Skills)
	}
	// provider proposing a duplicate must not double it
	count := 0
	for _, s := range res.Skills {
		if strings.EqualFold(s, "python") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("python duplicated: %v", res.Skills)
	}
}

func TestAnalyzeProviderRecommendationsUsed(t *testing.T) {
	uc := newTestUsecase(fakeGenerator{
		extractJSON: `["python", "sql"]`,
		recommendJSON: `[
			{"title": "Analytics Engineer", "reason": "strong sql", "readiness": 64},
			{"title": "Data Analyst", "reason": "best fit", "readiness": 81},
			{"title": "", "reason": "dropped", "readiness": 50},
			{"title": "BI Developer", "reason": "ok", "readiness": 140}
		]`,
	})

	res, err := uc.Analyze(context.Background(), AnalyzeParams{
		ResumeText: "python sql",
		TargetRole: "Data Analyst",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(res.RoleRecommendations) != 3 {
		t.Fatalf("expected 3 usable recommendations, got %+v", res.RoleRecommendations)
	}
	if res.RoleRecommendations[0].Title != "BI Developer" || res.RoleRecommendations[0].Readiness != 100 {
		t.Fatalf("readiness must clamp and sort descending: %+v", res.RoleRecommendations)
	}
	if res.RoleRecommendations[1].Title != "Data Analyst" {
		t.Fatalf("unexpected order: %+v", res.RoleRecommendations)
	}
	// target role appears in the list, so its readiness becomes the match percent
	if res.MatchPercent != 81 {
		t.Fatalf("match percent = %d, want 81", res.MatchPercent)
	}
}

func TestAnalyzeMalformedProviderOutput(t *testing.T) {
	uc := newTestUsecase(fakeGenerator{
		extractJSON:   `{"not": "a list"}`,
		recommendJSON: `"garbage"`,
	})

	res, err := uc.Analyze(context.Background(), AnalyzeParams{
		ResumeText: "python and sql reporting",
		TargetRole: "Data Analyst",
	})
	if err != nil {
		t.Fatalf("malformed provider output must not fail the request: %v", err)
	}
	if len(res.RoleRecommendations) == 0 {
		t.Fatalf("expected local recommendations")
	}
	for _, rec := range res.RoleRecommendations {
		if _, ok := testCatalog().Get(rec.Title); !ok {
			t.Fatalf("local recommendations must come from the catalog: %+v", rec)
		}
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	uc := newTestUsecase(fakeGenerator{err: errors.New("down")})

	res, err := uc.Analyze(context.Background(), AnalyzeParams{TargetRole: "Data Analyst"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ATS.Error == "" {
		t.Fatalf("expected ATS error marker for empty resume")
	}
	if res.TargetRoleKey != "Data Analyst" {
		t.Fatalf("target key = %q", res.TargetRoleKey)
	}
	if len(res.LearningPlan.Days30) == 0 || res.SummaryText == "" {
		t.Fatalf("plan and summary must still be produced: %+v", res)
	}
}
