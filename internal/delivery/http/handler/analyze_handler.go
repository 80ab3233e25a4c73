package handler

import (
	"errors"

	"trackmycareer/internal/delivery/http/dto"
	"trackmycareer/internal/delivery/http/middleware"
	"trackmycareer/internal/domain/planning"
	"trackmycareer/internal/pkg/response"
	"trackmycareer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyzeHandler struct {
	uc usecase.AnalysisUsecase
}

type analyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	TargetRole     string `json:"target_role"`
	JobDescription string `json:"job_description"`
}

func NewAnalyzeHandler(uc usecase.AnalysisUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze", h.Analyze)
}

func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Analyze(c.Context(), usecase.AnalyzeParams{
		ResumeText:     req.ResumeText,
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toAnalysisResponse(res))
}

func mapAnalysisUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Target role is required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func toAnalysisResponse(res usecase.AnalysisResult) dto.AnalysisResponse {
	out := dto.AnalysisResponse{
		Skills:              res.Skills,
		SkillCategories:     res.SkillCategories,
		RoleRecommendations: make([]dto.RoleScoreResponse, 0, len(res.RoleRecommendations)),
		LearningPlan: dto.LearningPlanResponse{
			Days30:        toTaskResponses(res.LearningPlan.Days30),
			Days60:        toTaskResponses(res.LearningPlan.Days60),
			Days90:        toTaskResponses(res.LearningPlan.Days90),
			DailySchedule: make([]dto.ScheduleBlockResponse, 0, len(res.LearningPlan.DailySchedule)),
			MissingSkills: res.LearningPlan.MissingSkills,
		},
		ATS: dto.ATSResponse{
			Score:           res.ATS.Score,
			Matched:         res.ATS.Matched,
			Total:           res.ATS.Total,
			MatchedKeywords: res.ATS.MatchedKeywords,
			Error:           res.ATS.Error,
		},
		Projects:      res.Projects,
		MissingSkills: res.MissingSkills,
		MatchPercent:  res.MatchPercent,
		GapLevels: dto.GapLevelsResponse{
			Critical: res.Gaps.Critical,
			Moderate: res.Gaps.Moderate,
			Minor:    res.Gaps.Minor,
		},
		TargetRoleKey: res.TargetRoleKey,
		SummaryText:   res.SummaryText,
	}

	for _, rs := range res.RoleRecommendations {
		out.RoleRecommendations = append(out.RoleRecommendations, dto.RoleScoreResponse{
			Title:         rs.Title,
			Readiness:     rs.Readiness,
			Reason:        rs.Reason,
			MatchedSkills: rs.MatchedSkills,
			MissingSkills: rs.MissingSkills,
		})
	}
	for _, sb := range res.LearningPlan.DailySchedule {
		out.LearningPlan.DailySchedule = append(out.LearningPlan.DailySchedule, dto.ScheduleBlockResponse{
			DayRange:  sb.DayRange,
			Morning:   sb.Morning,
			Afternoon: sb.Afternoon,
			Evening:   sb.Evening,
		})
	}

	return out
}

func toTaskResponses(tasks []planning.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		tr := dto.TaskResponse{
			Task:           t.Task,
			EstimatedHours: t.EstimatedHours,
			Notes:          t.Notes,
			Resources:      make([]dto.ResourceResponse, 0, len(t.Resources)),
		}
		for _, r := range t.Resources {
			tr.Resources = append(tr.Resources, dto.ResourceResponse{
				Type:  r.Type,
				Title: r.Title,
				URL:   r.URL,
				Hours: r.Hours,
			})
		}
		out = append(out, tr)
	}
	return out
}
