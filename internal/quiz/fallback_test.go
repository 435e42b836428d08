package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackProfileRules(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    string
	}{
		{
			name: "senior role wins over interest breadth",
			answers: Answers{
				0: Answer("senior_dev"),
				2: Answer("3"),
				4: AnswerList("a", "b"),
			},
			want: ProfileCareerClimber,
		},
		{
			name: "mid role also climbs",
			answers: Answers{
				0: Answer("mid_level"),
				2: Answer("10"),
				4: AnswerList("a", "b", "c", "d"),
			},
			want: ProfileCareerClimber,
		},
		{
			name: "three interests without seniority explores",
			answers: Answers{
				0: Answer("junior_dev"),
				2: Answer("3"),
				4: AnswerList("a", "b", "c"),
			},
			want: ProfileBroadExplorer,
		},
		{
			name: "ten hours a week builds",
			answers: Answers{
				0: Answer("junior_dev"),
				2: Answer("10"),
				4: AnswerList("a"),
			},
			want: ProfileFocusedBuilder,
		},
		{
			name: "fifteen hours a week builds",
			answers: Answers{
				0: Answer("student"),
				2: Answer("15"),
				4: AnswerList(),
			},
			want: ProfileFocusedBuilder,
		},
		{
			name: "nothing matches grows steadily",
			answers: Answers{
				0: Answer("junior_dev"),
				2: Answer("3"),
				4: AnswerList("a"),
			},
			want: ProfileSteadyGrower,
		},
		{
			name:    "empty answers grow steadily",
			answers: Answers{},
			want:    ProfileSteadyGrower,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FallbackProfile(tt.answers))
			// Pure function: same input, same output.
			require.Equal(t, tt.want, FallbackProfile(tt.answers))
		})
	}
}

func TestValidProfile(t *testing.T) {
	for _, p := range ProfileValues {
		require.True(t, ValidProfile(p))
	}
	require.False(t, ValidProfile("night_owl"))
	require.False(t, ValidProfile(""))
}

func TestFallbackCoachEchoesGoal(t *testing.T) {
	analysis, plan := FallbackCoach(Answers{5: Answer("Become a backend lead")})
	require.Equal(t, FallbackAnalysis, analysis)
	require.Contains(t, plan, "Become a backend lead")
	require.Contains(t, plan, "Practice using the debugger")
	require.NotContains(t, plan, "…")
}

func TestFallbackCoachTruncatesLongGoal(t *testing.T) {
	goal := strings.Repeat("g", 120)
	_, plan := FallbackCoach(Answers{5: Answer(goal)})
	require.Contains(t, plan, strings.Repeat("g", 80)+"…")
	require.NotContains(t, plan, strings.Repeat("g", 81))
}

func TestFallbackCoachWithoutGoal(t *testing.T) {
	_, plan := FallbackCoach(Answers{})
	steps := strings.Split(plan, "\n\n")
	require.Len(t, steps, 6)
	require.Contains(t, steps[5], "Set one clear career or skill goal")
}
