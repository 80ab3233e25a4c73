package dto

import "trackmycareer/internal/catalog"

type AnalysisResponse struct {
	Skills              []string             `json:"skills"`
	SkillCategories     map[string][]string  `json:"skill_categories"`
	RoleRecommendations []RoleScoreResponse  `json:"role_recommendations"`
	LearningPlan        LearningPlanResponse `json:"learning_plan"`
	ATS                 ATSResponse          `json:"ats"`
	Projects            []catalog.Project    `json:"projects"`
	MissingSkills       []string             `json:"missing_skills"`
	MatchPercent        int                  `json:"match_percent"`
	GapLevels           GapLevelsResponse    `json:"gap_levels"`
	TargetRoleKey       string               `json:"target_role_key"`
	SummaryText         string               `json:"summary_text"`
}

type RoleScoreResponse struct {
	Title         string   `json:"title"`
	Readiness     int      `json:"readiness"`
	Reason        string   `json:"reason"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

type LearningPlanResponse struct {
	Days30        []TaskResponse          `json:"30_days"`
	Days60        []TaskResponse          `json:"60_days"`
	Days90        []TaskResponse          `json:"90_days"`
	DailySchedule []ScheduleBlockResponse `json:"daily_schedule"`
	MissingSkills []string                `json:"missing_skills"`
}

type TaskResponse struct {
	Task           string             `json:"task"`
	EstimatedHours int                `json:"estimated_hours"`
	Notes          string             `json:"notes"`
	Resources      []ResourceResponse `json:"resources"`
}

type ResourceResponse struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Hours int    `json:"hours"`
}

type ScheduleBlockResponse struct {
	DayRange  string `json:"day_range"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

type ATSResponse struct {
	Score           int      `json:"ats_score"`
	Matched         int      `json:"matched"`
	Total           int      `json:"total"`
	MatchedKeywords []string `json:"matched_keywords"`
	Error           string   `json:"error,omitempty"`
}

type GapLevelsResponse struct {
	Critical []string `json:"critical"`
	Moderate []string `json:"moderate"`
	Minor    []string `json:"minor"`
}

type RoleSummaryResponse struct {
	Name        string `json:"name"`
	SkillCount  int    `json:"skill_count"`
	ProjectPool int    `json:"project_pool"`
}
