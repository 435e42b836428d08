package request_models

import (
	"pathfinders/internal/quiz"
)

// AnalyzeRequest is the public analysis endpoint body. Answers are keyed by
// zero-based step index; each value is a string or a list of option codes.
type AnalyzeRequest struct {
	Answers map[string]quiz.AnswerValue `json:"answers"`
}

type SetAnswerRequest struct {
	Value quiz.AnswerValue `json:"value"`
}
