package planning

import (
	"strings"
	"testing"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/domain/matching"
)

func testPlanner() *Planner {
	cat := catalog.New([]catalog.Role{
		{Name: "Data Analyst", Skills: []string{"python", "sql", "pandas", "excel", "tableau"}},
		{
			Name:   "Frontend Developer",
			Skills: []string{"react", "javascript", "html"},
			Projects: []catalog.Project{
				{Title: "Portfolio Site", Description: "d", TechStack: []string{"react"}},
				{Title: "Dashboard UI", Description: "d", TechStack: []string{"react", "css"}},
				{Title: "Design System", Description: "d"},
				{Title: "One Too Many", Description: "d"},
			},
		},
		{Name: "General", Skills: []string{"communication"}},
	})
	return NewPlanner(cat, matching.NewResolver(cat, matching.DefaultScoring()))
}

func TestBuildPlanShape(t *testing.T) {
	p := testPlanner()

	plan := p.BuildPlan("Data Analyst", []string{"python", "sql"})

	if len(plan.Days30) != 3 {
		t.Fatalf("expected 3 first-month tasks, got %d", len(plan.Days30))
	}
	for _, task := range plan.Days30 {
		if !strings.HasPrefix(task.Task, "Learn core of ") {
			t.Fatalf("unexpected task %q", task.Task)
		}
		if task.EstimatedHours != 15 || len(task.Resources) == 0 {
			t.Fatalf("malformed task %+v", task)
		}
	}
	if len(plan.Days60) != 1 || len(plan.Days90) != 1 {
		t.Fatalf("expected single 60- and 90-day tasks, got %d / %d", len(plan.Days60), len(plan.Days90))
	}
	if len(plan.DailySchedule) != 2 {
		t.Fatalf("expected weekday and weekend blocks, got %d", len(plan.DailySchedule))
	}
	want := []string{"Pandas", "Excel", "Tableau"}
	if len(plan.MissingSkills) != len(want) {
		t.Fatalf("missing = %v, want %v", plan.MissingSkills, want)
	}
	for i, m := range want {
		if plan.MissingSkills[i] != m {
			t.Fatalf("missing = %v, want %v", plan.MissingSkills, want)
		}
	}
}

func TestBuildPlanDeterministic(t *testing.T) {
	p := testPlanner()
	first := p.BuildPlan("Data Analyst", []string{"python"})
	second := p.BuildPlan("Data Analyst", []string{"python"})
	if first.Days30[0].Task != second.Days30[0].Task || len(first.MissingSkills) != len(second.MissingSkills) {
		t.Fatalf("plan not deterministic: %+v vs %+v", first, second)
	}
}

func TestBuildPlanNothingMissing(t *testing.T) {
	p := testPlanner()

	plan := p.BuildPlan("Data Analyst", []string{"python", "sql", "pandas", "excel", "tableau"})

	if len(plan.Days30) != 1 {
		t.Fatalf("expected single polish task, got %d", len(plan.Days30))
	}
	if !strings.Contains(plan.Days30[0].Task, "Polish fundamentals") {
		t.Fatalf("unexpected task %q", plan.Days30[0].Task)
	}
	if plan.MissingSkills == nil || len(plan.MissingSkills) != 0 {
		t.Fatalf("missing skills must be an empty slice, got %#v", plan.MissingSkills)
	}
}

func TestBuildPlanUnknownRoleFallsBack(t *testing.T) {
	p := testPlanner()
	plan := p.BuildPlan("zzzz qqqq", nil)
	// resolves to General, whose single skill becomes the gap
	if len(plan.MissingSkills) != 1 || plan.MissingSkills[0] != "Communication" {
		t.Fatalf("missing = %v", plan.MissingSkills)
	}
}

func TestSuggestProjectsFromCatalog(t *testing.T) {
	p := testPlanner()

	projects := p.SuggestProjects("Frontend Developer", 3)

	if len(projects) != 3 {
		t.Fatalf("expected topN cap of 3, got %d", len(projects))
	}
	if projects[0].Title != "Portfolio Site" {
		t.Fatalf("unexpected first project %+v", projects[0])
	}
	for _, proj := range projects {
		if proj.TechStack == nil {
			t.Fatalf("tech stack must never be nil: %+v", proj)
		}
	}
}

func TestSuggestProjectsSynthesized(t *testing.T) {
	p := testPlanner()

	projects := p.SuggestProjects("Data Analyst", 3)

	if len(projects) != 1 {
		t.Fatalf("expected one synthesized project, got %d", len(projects))
	}
	if projects[0].Title != "Data Analyst - Practice Project" {
		t.Fatalf("unexpected title %q", projects[0].Title)
	}
	if len(projects[0].TechStack) != 3 {
		t.Fatalf("expected first three role skills as stack, got %v", projects[0].TechStack)
	}
}

func TestSummaryBands(t *testing.T) {
	missing := []string{"Pandas", "Excel"}

	cases := []struct {
		percent int
		want    string
	}{
		{100, "exceptionally well matched"},
		{95, "exceptionally well matched"},
		{72, "Focus on the missing skills"},
		{45, "solid base"},
		{10, "Prioritize learning"},
	}
	for _, c := range cases {
		got := Summary("Data Analyst", c.percent, missing)
		if !strings.Contains(got, c.want) {
			t.Fatalf("Summary(%d) = %q, want fragment %q", c.percent, got, c.want)
		}
	}
}

func TestSummaryMissingSkillsCap(t *testing.T) {
	missing := []string{"A", "B", "C", "D", "E", "F", "G"}
	got := Summary("Data Analyst", 45, missing)
	if strings.Contains(got, "F") || strings.Contains(got, "G") {
		t.Fatalf("more than five skills listed: %q", got)
	}
	if !strings.Contains(got, "A, B, C, D, E") {
		t.Fatalf("expected first five skills: %q", got)
	}

	empty := Summary("Data Analyst", 45, nil)
	if !strings.Contains(empty, "core skills") {
		t.Fatalf("expected placeholder for no missing skills: %q", empty)
	}
}
