package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerValue is either a single option code / free-text string, or an
// ordered list of option codes for multi-choice steps. Exactly one of the two
// forms is set.
type AnswerValue struct {
	Text string
	List []string
}

func Answer(text string) AnswerValue {
	return AnswerValue{Text: text}
}

func AnswerList(codes ...string) AnswerValue {
	return AnswerValue{List: codes}
}

func (v AnswerValue) IsList() bool {
	return v.List != nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	// A string unmarshal would swallow null as "", leaving a present-but-empty
	// answer behind; an unanswered step is an absent key, so null is rejected.
	if string(bytes.TrimSpace(data)) == "null" {
		return fmt.Errorf("answer must be a string or a list of strings")
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = AnswerValue{Text: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		*v = AnswerValue{List: list}
		return nil
	}
	return fmt.Errorf("answer must be a string or a list of strings")
}

// Answers maps zero-based step index to the user's answer. Keys exist only
// for steps the user has reached.
type Answers map[int]AnswerValue

// State is one user's funnel progress. CompletedAt is a unix timestamp, nil
// while the funnel is in progress.
type State struct {
	Step        int     `json:"step"`
	Answers     Answers `json:"answers"`
	CompletedAt *int64  `json:"completed_at"`
}

func EmptyState() State {
	return State{Step: 0, Answers: Answers{}, CompletedAt: nil}
}

// ValidAnswer reports whether value satisfies the validity rule of the step
// at index. Unknown step indexes or types never validate, blocking progress.
func ValidAnswer(index int, value AnswerValue, ok bool) bool {
	if !ok || index < 0 || index >= len(Steps) {
		return false
	}
	step := Steps[index]
	switch step.Type {
	case StepFreeText:
		return !value.IsList() && strings.TrimSpace(value.Text) != ""
	case StepSingleChoice:
		if value.IsList() || value.Text == "" {
			return false
		}
		for _, opt := range step.Options {
			if opt == value.Text {
				return true
			}
		}
		return false
	case StepMultiChoice:
		return value.IsList() && len(value.List) > 0
	default:
		return false
	}
}

// CanProceed reports whether the funnel may advance past its current step.
func (s State) CanProceed() bool {
	value, ok := s.Answers[s.Step]
	return ValidAnswer(s.Step, value, ok)
}
