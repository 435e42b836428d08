package response_models

import (
	"pathfinders/internal/quiz"
)

// QuizStateResponse mirrors the funnel state back to the client along with
// the step catalog position it needs to render.
type QuizStateResponse struct {
	Step        int                  `json:"step"`
	TotalSteps  int                  `json:"total_steps"`
	Progress    int                  `json:"progress"`
	Answers     quiz.Answers         `json:"answers"`
	CompletedAt *int64               `json:"completed_at"`
	CanProceed  bool                 `json:"can_proceed"`
	Definition  *quiz.StepDefinition `json:"current_step,omitempty"`
}

func NewQuizStateResponse(state quiz.State) QuizStateResponse {
	resp := QuizStateResponse{
		Step:        state.Step,
		TotalSteps:  quiz.TotalSteps,
		Progress:    quiz.Progress(state.Step),
		Answers:     state.Answers,
		CompletedAt: state.CompletedAt,
		CanProceed:  state.CanProceed(),
	}
	if state.Step >= 0 && state.Step < quiz.TotalSteps {
		def := quiz.Steps[state.Step]
		resp.Definition = &def
	}
	return resp
}
