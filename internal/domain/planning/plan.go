package planning

import (
	"fmt"
	"strings"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/domain/matching"
	"trackmycareer/internal/pkg/textutil"
)

type Resource struct {
	Type  string
	Title string
	URL   string
	Hours int
}

type Task struct {
	Task           string
	EstimatedHours int
	Notes          string
	Resources      []Resource
}

type ScheduleBlock struct {
	DayRange  string
	Morning   string
	Afternoon string
	Evening   string
}

type Plan struct {
	Days30        []Task
	Days60        []Task
	Days90        []Task
	DailySchedule []ScheduleBlock
	MissingSkills []string
}

// maximum missing skills turned into dedicated 30-day tasks
const firstMonthSkillCap = 3

// Planner fills a deterministic 30/60/90-day template from the gap between
// a role's required skills and the candidate's.
type Planner struct {
	cat      *catalog.Catalog
	resolver *matching.Resolver
}

func NewPlanner(cat *catalog.Catalog, resolver *matching.Resolver) *Planner {
	return &Planner{cat: cat, resolver: resolver}
}

// BuildPlan always returns a well-formed plan, whatever the inputs.
func (p *Planner) BuildPlan(role string, possessed []string) Plan {
	roleKey := p.resolver.Resolve(role)
	required := p.cat.Skills(roleKey)

	have := make(map[string]struct{}, len(possessed))
	for _, s := range possessed {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	missing := make([]string, 0, len(required))
	for _, rs := range required {
		if _, ok := have[rs]; !ok {
			missing = append(missing, rs)
		}
	}

	plan := Plan{
		Days30:        p.firstMonth(missing),
		Days60:        []Task{buildTask60()},
		Days90:        []Task{buildTask90()},
		DailySchedule: dailySchedule(),
		MissingSkills: textutil.SkillLabels(missing),
	}
	return plan
}

func (p *Planner) firstMonth(missing []string) []Task {
	top := missing
	if len(top) > firstMonthSkillCap {
		top = top[:firstMonthSkillCap]
	}

	if len(top) == 0 {
		return []Task{{
			Task:           "Polish fundamentals & build a small practice project",
			EstimatedHours: 25,
			Notes:          "Consolidate core knowledge and document work.",
			Resources: []Resource{
				{Type: "YouTube", Title: "Crash course (free)", Hours: 6},
			},
		}}
	}

	tasks := make([]Task, 0, len(top))
	for _, m := range top {
		tasks = append(tasks, Task{
			Task:           fmt.Sprintf("Learn core of %s", m),
			EstimatedHours: 15,
			Notes:          fmt.Sprintf("Hands-on exercises and tutorials focused on %s", m),
			Resources: []Resource{
				{Type: "YouTube", Title: fmt.Sprintf("%s - Intro (free)", m), Hours: 4},
			},
		})
	}
	return tasks
}

func buildTask60() Task {
	return Task{
		Task:           "Build 1-2 small projects integrating 30-day learnings",
		EstimatedHours: 40,
		Notes:          "Push to GitHub and write READMEs.",
		Resources: []Resource{
			{Type: "Kaggle/Medium", Title: "Project tutorials", Hours: 20},
		},
	}
}

func buildTask90() Task {
	return Task{
		Task:           "Polish portfolio & interview prep",
		EstimatedHours: 40,
		Notes:          "Mock interviews and polish README + demo video.",
		Resources: []Resource{
			{Type: "Platform", Title: "Mock interviews", Hours: 15},
		},
	}
}

func dailySchedule() []ScheduleBlock {
	return []ScheduleBlock{
		{DayRange: "Mon-Fri", Morning: "1h theory", Afternoon: "2h hands-on", Evening: "1h revision"},
		{DayRange: "Weekend", Morning: "3h project", Afternoon: "2h practice"},
	}
}
