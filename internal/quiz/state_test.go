package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanProceed(t *testing.T) {
	tests := []struct {
		name string
		step int
		set  bool
		val  AnswerValue
		want bool
	}{
		{name: "missing answer blocks", step: 0, set: false, want: false},
		{name: "single choice valid option", step: 0, set: true, val: Answer("debug_debugger"), want: true},
		{name: "single choice unknown option", step: 0, set: true, val: Answer("debug_magic"), want: false},
		{name: "single choice empty string", step: 0, set: true, val: Answer(""), want: false},
		{name: "single choice rejects list", step: 0, set: true, val: AnswerList("debug_debugger"), want: false},
		{name: "multi choice non-empty list", step: 3, set: true, val: AnswerList("habit_tests", "habit_refactor"), want: true},
		{name: "multi choice empty list", step: 3, set: true, val: AnswerList(), want: false},
		{name: "multi choice rejects scalar", step: 3, set: true, val: Answer("habit_tests"), want: false},
		{name: "free text non-empty", step: 5, set: true, val: Answer("become a backend lead"), want: true},
		{name: "free text whitespace only", step: 5, set: true, val: Answer("   \t"), want: false},
		{name: "step out of range", step: 6, set: true, val: Answer("anything"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := EmptyState()
			state.Step = tt.step
			if tt.set {
				state.Answers[tt.step] = tt.val
			}
			require.Equal(t, tt.want, state.CanProceed())
		})
	}
}

func TestAnswerValueJSONRoundTrip(t *testing.T) {
	answers := Answers{
		0: Answer("debug_console"),
		3: AnswerList("habit_tests", "habit_code_review"),
		5: Answer("ship something real"),
	}
	raw, err := json.Marshal(answers)
	require.NoError(t, err)

	var decoded Answers
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, answers, decoded)
}

func TestAnswerValueRejectsObjects(t *testing.T) {
	var v AnswerValue
	err := json.Unmarshal([]byte(`{"nested":true}`), &v)
	require.Error(t, err)
}

func TestAnswerValueRejectsNull(t *testing.T) {
	var v AnswerValue
	require.Error(t, json.Unmarshal([]byte(`null`), &v))

	// A null entry poisons the whole answer set rather than slipping in as an
	// empty answer.
	var answers Answers
	require.Error(t, json.Unmarshal([]byte(`{"0":"debug_console","5":null}`), &answers))
}

func TestProgress(t *testing.T) {
	require.Equal(t, 17, Progress(0))
	require.Equal(t, 50, Progress(2))
	require.Equal(t, 100, Progress(5))
}

func TestCatalogShape(t *testing.T) {
	require.Len(t, Steps, 6)
	require.Equal(t, 6, TotalSteps)
	require.Equal(t, StepMultiChoice, Steps[3].Type)
	require.Equal(t, StepFreeText, Steps[5].Type)
	require.Empty(t, Steps[5].Options)
	for i, step := range Steps[:5] {
		require.NotEmptyf(t, step.Options, "step %d should carry options", i)
		for _, code := range step.Options {
			if step.Type == StepFreeText {
				continue
			}
			_, ok := OptionLabels[code]
			require.Truef(t, ok, "option %s has no prompt label", code)
		}
	}
}
