package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"pathfinders/internal/models/response_models"
	"pathfinders/internal/quiz"
	"pathfinders/pkg/utils"
)

// AnalysisServiceInterface turns a completed answer set into the deployment's
// analysis result. Without a configured completion backend it serves the
// deterministic fallback; with one, backend failures are surfaced as typed
// errors so the caller can retry, never silently downgraded to the fallback.
type AnalysisServiceInterface interface {
	Analyze(ctx context.Context, answers quiz.Answers) (response_models.AnalysisResult, error)
	Variant() response_models.AnalysisVariant
}

type AnalysisService struct {
	client  utils.CompletionClientInterface // nil when no credential is configured
	variant response_models.AnalysisVariant
}

func NewAnalysisService(client utils.CompletionClientInterface, variant response_models.AnalysisVariant) AnalysisServiceInterface {
	if variant != response_models.VariantProfile {
		variant = response_models.VariantCoach
	}
	return &AnalysisService{
		client:  client,
		variant: variant,
	}
}

func (a *AnalysisService) Variant() response_models.AnalysisVariant {
	return a.variant
}

const coachSystemPrompt = `You are a developer career coach for junior and experienced developers. You will receive quiz answers about debugging, getting unstuck, learning codebases, habits, and code review.

Your task:
1. **Analysis** (2-4 short paragraphs): Interpret their answers. For each question, note what they chose and, where it makes sense, what a stronger or more effective choice would be and why. Be encouraging, not judgmental. Mention their stated career/skill goal if they gave one. Write in clear, concise English.

2. **Plan** (4-6 actionable steps): Give a concrete improvement plan to become a better programmer/developer. Each step should be specific and doable (e.g. "Use the debugger on your next bug" or "Trace one user flow in the new repo before changing code"). Order by impact. Reference their goal if they shared one.

Respond with valid JSON only, no markdown. Use this exact format:
{"analysis":"<full analysis text>","plan":"<step 1>\n\n<step 2>\n\n<step 3>\n\n..."}
Use \n\n to separate plan steps.`

const profileSystemPrompt = `You are a developer career coach. You will receive quiz answers about a developer's role, habits, available time, and interests.

Classify them into exactly one of these profiles:
- "focused_builder": limited weekly time, invests it deliberately in building skills
- "broad_explorer": wide interests, samples many areas of the craft
- "career_climber": mid or senior level, optimizing for advancement
- "steady_grower": consistent, incremental improvement without a sharp focus

Respond with valid JSON only, no markdown. Use this exact format:
{"profile":"<one of the four values above>","description":"<2-3 sentences personalized to their answers>"}`

const defaultCoachPlan = `Focus on one habit at a time: debugging with the debugger, reading docs when stuck, and asking "why" in code reviews.`

func (a *AnalysisService) Analyze(ctx context.Context, answers quiz.Answers) (response_models.AnalysisResult, error) {
	if a.client == nil {
		// Not configured is a valid operating mode, not an error path.
		return a.fallback(answers), nil
	}

	summary := quiz.Summarize(answers)
	userPrompt := fmt.Sprintf("Quiz answers:\n%s\n\nReturn JSON as described.", summary)

	raw, err := a.client.CompleteJSON(ctx, a.systemPrompt(), userPrompt)
	if err != nil {
		log.Printf("analysis completion failed: %v", err)
		return response_models.AnalysisResult{}, fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}

	switch a.variant {
	case response_models.VariantProfile:
		return a.parseProfile(raw)
	default:
		return a.parseCoach(raw)
	}
}

func (a *AnalysisService) systemPrompt() string {
	if a.variant == response_models.VariantProfile {
		return profileSystemPrompt
	}
	return coachSystemPrompt
}

func (a *AnalysisService) fallback(answers quiz.Answers) response_models.AnalysisResult {
	if a.variant == response_models.VariantProfile {
		profile := quiz.FallbackProfile(answers)
		return response_models.AnalysisResult{
			Variant:  response_models.VariantProfile,
			Profile:  &response_models.ProfileResult{Profile: profile},
			Fallback: true,
		}
	}
	analysis, plan := quiz.FallbackCoach(answers)
	return response_models.AnalysisResult{
		Variant:  response_models.VariantCoach,
		Coach:    &response_models.CoachResult{Analysis: analysis, Plan: plan},
		Fallback: true,
	}
}

func (a *AnalysisService) parseCoach(raw string) (response_models.AnalysisResult, error) {
	var parsed struct {
		Analysis string `json:"analysis"`
		Plan     string `json:"plan"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return response_models.AnalysisResult{}, fmt.Errorf("%w: %v", utils.ErrInvalidAIResponse, err)
	}
	analysis := strings.TrimSpace(parsed.Analysis)
	plan := strings.TrimSpace(parsed.Plan)
	if analysis == "" {
		return response_models.AnalysisResult{}, fmt.Errorf("%w: missing analysis", utils.ErrInvalidAIResponse)
	}
	if plan == "" {
		plan = defaultCoachPlan
	}
	return response_models.AnalysisResult{
		Variant: response_models.VariantCoach,
		Coach:   &response_models.CoachResult{Analysis: analysis, Plan: plan},
	}, nil
}

func (a *AnalysisService) parseProfile(raw string) (response_models.AnalysisResult, error) {
	var parsed struct {
		Profile     string `json:"profile"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return response_models.AnalysisResult{}, fmt.Errorf("%w: %v", utils.ErrInvalidAIResponse, err)
	}
	if !quiz.ValidProfile(parsed.Profile) {
		return response_models.AnalysisResult{}, fmt.Errorf("%w: unexpected profile %q", utils.ErrInvalidAIResponse, parsed.Profile)
	}
	return response_models.AnalysisResult{
		Variant: response_models.VariantProfile,
		Profile: &response_models.ProfileResult{
			Profile:     parsed.Profile,
			Description: strings.TrimSpace(parsed.Description),
		},
	}, nil
}
