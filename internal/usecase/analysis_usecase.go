package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"sort"
	"strings"

	"trackmycareer/internal/ai"
	"trackmycareer/internal/catalog"
	"trackmycareer/internal/domain/extraction"
	"trackmycareer/internal/domain/matching"
	"trackmycareer/internal/domain/planning"
	"trackmycareer/internal/pkg/textutil"
)

var ErrInvalidInput = errors.New("invalid input")

const recommendationTopN = 4

type AnalyzeParams struct {
	ResumeText     string
	TargetRole     string
	JobDescription string
}

type AnalysisResult struct {
	Skills              []string
	SkillCategories     map[string][]string
	RoleRecommendations []matching.RoleScore
	LearningPlan        planning.Plan
	ATS                 matching.ATSResult
	Projects            []catalog.Project
	MissingSkills       []string
	MatchPercent        int
	Gaps                matching.GapLevels
	TargetRoleKey       string
	SummaryText         string
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, params AnalyzeParams) (AnalysisResult, error)
}

// Analysis orchestrates the full pipeline: extraction, ATS scoring, role
// recommendation, learning plan, projects and summary. Every step that can
// consult the text-generation collaborator has a total deterministic
// fallback, so provider failure never fails a request.
type Analysis struct {
	cat         *catalog.Catalog
	vocab       *catalog.Vocabulary
	cfg         matching.Scoring
	extractor   *extraction.Extractor
	resolver    *matching.Resolver
	ats         *matching.ATSScorer
	recommender *matching.Recommender
	planner     *planning.Planner
	gen         ai.Generator
	logger      *log.Logger
}

func NewAnalysisUsecase(
	cat *catalog.Catalog,
	vocab *catalog.Vocabulary,
	cfg matching.Scoring,
	gen ai.Generator,
	logger *log.Logger,
) *Analysis {
	if gen == nil {
		gen = ai.Disabled{}
	}
	if logger == nil {
		logger = log.Default()
	}
	resolver := matching.NewResolver(cat, cfg)
	return &Analysis{
		cat:         cat,
		vocab:       vocab,
		cfg:         cfg,
		extractor:   extraction.New(vocab, cfg.ExtractFuzzyThreshold),
		resolver:    resolver,
		ats:         matching.NewATSScorer(cat, resolver, cfg),
		recommender: matching.NewRecommender(cat, cfg),
		planner:     planning.NewPlanner(cat, resolver),
		gen:         gen,
		logger:      logger,
	}
}

func (u *Analysis) Analyze(ctx context.Context, params AnalyzeParams) (AnalysisResult, error) {
	if strings.TrimSpace(params.TargetRole) == "" {
		return AnalysisResult{}, ErrInvalidInput
	}

	skills := u.extractSkills(ctx, params.ResumeText)

	atsRes := u.ats.Score(params.ResumeText, params.TargetRole, params.JobDescription)
	recs := u.recommendRoles(ctx, skills)
	plan := u.planner.BuildPlan(params.TargetRole, skills)
	projects := u.planner.SuggestProjects(params.TargetRole, 3)

	targetKey := u.resolver.Resolve(params.TargetRole)
	matchPercent := u.matchPercent(targetKey, skills, recs)
	gaps := matching.ClassifyGaps(u.vocab, u.cat.Skills(targetKey), skills, u.cfg)

	return AnalysisResult{
		Skills:              textutil.SkillLabels(skills),
		SkillCategories:     catalog.Categorize(skills),
		RoleRecommendations: recs,
		LearningPlan:        plan,
		ATS:                 atsRes,
		Projects:            projects,
		MissingSkills:       plan.MissingSkills,
		MatchPercent:        matchPercent,
		Gaps:                gaps,
		TargetRoleKey:       targetKey,
		SummaryText:         planning.Summary(targetKey, matchPercent, plan.MissingSkills),
	}, nil
}

// extractSkills runs the local heuristic extractor and unions in any skills
// the collaborator proposes. The collaborator is strictly additive; on any
// failure the local result stands alone.
func (u *Analysis) extractSkills(ctx context.Context, resumeText string) []string {
	local := u.extractor.Extract(resumeText)
	if strings.TrimSpace(resumeText) == "" {
		return local
	}

	raw, err := u.gen.GenerateStructured(ctx, skillExtractionPrompt(resumeText))
	if err != nil {
		if !errors.Is(err, ai.ErrDisabled) {
			u.logger.Printf("analysis: skill extraction provider failed, using local result: %v", err)
		}
		return local
	}

	var proposed []string
	if err := json.Unmarshal(raw, &proposed); err != nil {
		u.logger.Printf("analysis: skill extraction provider returned malformed list: %v", err)
		return local
	}

	seen := make(map[string]struct{}, len(local)+len(proposed))
	merged := make([]string, 0, len(local)+len(proposed))
	for _, s := range append(append([]string{}, local...), proposed...) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, key)
	}
	sort.Strings(merged)
	return merged
}

// recommendRoles prefers the collaborator's ranking and falls back to the
// deterministic domain-aware recommender on failure or malformed output.
func (u *Analysis) recommendRoles(ctx context.Context, skills []string) []matching.RoleScore {
	if len(skills) > 0 {
		if recs, ok := u.providerRecommendations(ctx, skills); ok {
			return recs
		}
	}
	return u.recommender.Recommend(skills, recommendationTopN)
}

func (u *Analysis) providerRecommendations(ctx context.Context, skills []string) ([]matching.RoleScore, bool) {
	raw, err := u.gen.GenerateStructured(ctx, roleSuggestionPrompt(skills, recommendationTopN))
	if err != nil {
		if !errors.Is(err, ai.ErrDisabled) {
			u.logger.Printf("analysis: role suggestion provider failed, using local ranking: %v", err)
		}
		return nil, false
	}

	var items []struct {
		Title     string `json:"title"`
		Reason    string `json:"reason"`
		Readiness int    `json:"readiness"`
	}
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		u.logger.Printf("analysis: role suggestion provider returned malformed list")
		return nil, false
	}

	out := make([]matching.RoleScore, 0, recommendationTopN)
	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		readiness := it.Readiness
		if readiness < 0 {
			readiness = 0
		}
		if readiness > 100 {
			readiness = 100
		}
		out = append(out, matching.RoleScore{
			Title:         title,
			Readiness:     readiness,
			Reason:        strings.TrimSpace(it.Reason),
			MatchedSkills: []string{},
			MissingSkills: []string{},
		})
		if len(out) == recommendationTopN {
			break
		}
	}
	if len(out) == 0 {
		return nil, false
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Readiness > out[j].Readiness })
	return out, true
}

// matchPercent prefers the resolved target role's readiness from the
// recommendation list, then direct skill overlap, then the top
// recommendation.
func (u *Analysis) matchPercent(targetKey string, skills []string, recs []matching.RoleScore) int {
	for _, r := range recs {
		if strings.EqualFold(r.Title, targetKey) {
			return r.Readiness
		}
	}

	required := u.cat.Skills(targetKey)
	if len(required) > 0 {
		have := make(map[string]struct{}, len(skills))
		for _, s := range skills {
			have[s] = struct{}{}
		}
		inter := 0
		for _, rs := range required {
			if _, ok := have[rs]; ok {
				inter++
			}
		}
		if pct := int(math.Round(float64(inter) / float64(len(required)) * 100)); pct > 0 {
			return pct
		}
	}

	if len(recs) > 0 {
		return recs[0].Readiness
	}
	return 0
}
