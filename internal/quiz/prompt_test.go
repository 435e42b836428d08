package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeOrdersByStepIndex(t *testing.T) {
	// Inserted out of order on purpose; output must follow step order.
	answers := Answers{
		5: Answer("Become a backend lead"),
		0: Answer("debug_console"),
		3: AnswerList("habit_tests", "habit_refactor"),
		1: Answer("stuck_docs_first"),
	}

	summary := Summarize(answers)
	lines := strings.Split(summary, "\n")
	require.Equal(t, []string{
		"How they debug: Add console.log and narrow it down",
		"What they do when stuck: Read official docs or source code first",
		"Habits they do regularly: Write tests for my code, Refactor or improve existing code without being asked",
		"Career or skill goal (free text): Become a backend lead",
	}, lines)
}

func TestSummarizeFallsBackToRawCode(t *testing.T) {
	summary := Summarize(Answers{0: Answer("not_a_known_code")})
	require.Equal(t, "How they debug: not_a_known_code", summary)
}

func TestSummarizeEmptyAnswers(t *testing.T) {
	require.Equal(t, "", Summarize(Answers{}))
}

func TestSummarizeIsDeterministic(t *testing.T) {
	answers := Answers{
		0: Answer("debug_debugger"),
		2: Answer("codebase_trace_flow"),
		4: Answer("feedback_ask_why"),
	}
	first := Summarize(answers)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Summarize(answers))
	}
}
