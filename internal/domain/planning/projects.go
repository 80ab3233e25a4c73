package planning

import (
	"fmt"

	"trackmycareer/internal/catalog"
)

// SuggestProjects returns up to topN sample projects for the resolved role,
// synthesizing a practice project when the role ships none.
func (p *Planner) SuggestProjects(role string, topN int) []catalog.Project {
	if topN <= 0 {
		topN = 3
	}

	roleKey := p.resolver.Resolve(role)
	r, _ := p.cat.Get(roleKey)

	out := make([]catalog.Project, 0, topN)
	for _, proj := range r.Projects {
		if len(out) == topN {
			break
		}
		stack := proj.TechStack
		if stack == nil {
			stack = []string{}
		}
		out = append(out, catalog.Project{
			Title:       proj.Title,
			Description: proj.Description,
			TechStack:   stack,
		})
	}

	if len(out) == 0 {
		stack := r.Skills
		if len(stack) > 3 {
			stack = stack[:3]
		}
		out = append(out, catalog.Project{
			Title:       fmt.Sprintf("%s - Practice Project", roleKey),
			Description: "Build a small project that addresses role fundamentals and document outcomes.",
			TechStack:   stack,
		})
	}
	return out
}
