package quiz

import (
	"fmt"
	"strings"
)

// Profile archetypes returned by the profile deployment variant.
const (
	ProfileFocusedBuilder = "focused_builder"
	ProfileBroadExplorer  = "broad_explorer"
	ProfileCareerClimber  = "career_climber"
	ProfileSteadyGrower   = "steady_grower"
)

var ProfileValues = []string{
	ProfileFocusedBuilder,
	ProfileBroadExplorer,
	ProfileCareerClimber,
	ProfileSteadyGrower,
}

func ValidProfile(profile string) bool {
	for _, p := range ProfileValues {
		if p == profile {
			return true
		}
	}
	return false
}

const FallbackAnalysis = "Your answers show a mix of habits that many developers have. " +
	"There's always room to level up: using the debugger more, reading docs before searching, " +
	"tracing one flow when learning a codebase, and treating code review as a learning conversation " +
	"are habits that separate strong developers."

var fallbackPlanSteps = []string{
	"Practice using the debugger (breakpoints) on your next bug instead of only console.log.",
	"When stuck, try reading the official docs or source for 15 minutes before searching the web.",
	"Next time you join a codebase, trace one user flow or feature end-to-end before making changes.",
	"Do at least one of: write tests, do a code review, or refactor a small area without being asked—each week.",
	"When you get code review feedback, ask the reviewer why they suggested it; turn it into a short discussion.",
}

const goalEchoLimit = 80

// FallbackCoach is the fixed-text result used when no completion backend is
// configured. The plan echoes the user's stated goal from the final step,
// truncated so a long goal doesn't dominate the plan.
func FallbackCoach(answers Answers) (analysis, plan string) {
	goal := ""
	if v, ok := answers[TotalSteps-1]; ok && !v.IsList() {
		goal = v.Text
	}
	steps := append([]string{}, fallbackPlanSteps...)
	if goal != "" {
		steps = append(steps, fmt.Sprintf("Keep your goal in mind: %q—break it into monthly and weekly steps.", truncateGoal(goal)))
	} else {
		steps = append(steps, "Set one clear career or skill goal and break it into monthly steps.")
	}
	return FallbackAnalysis, strings.Join(steps, "\n\n")
}

func truncateGoal(goal string) string {
	runes := []rune(goal)
	if len(runes) <= goalEchoLimit {
		return goal
	}
	return string(runes[:goalEchoLimit]) + "…"
}

// FallbackProfile classifies the user from three answer slots: role/seniority
// (step 0), weekly time commitment (step 2) and interest breadth (step 4).
// Rules apply in priority order; the first match wins.
func FallbackProfile(answers Answers) string {
	role := strings.ToLower(answers[0].Text)
	timeCommitment := answers[2].Text
	interests := answers[4].List

	switch {
	case strings.Contains(role, "senior") || strings.Contains(role, "mid"):
		return ProfileCareerClimber
	case len(interests) >= 3:
		return ProfileBroadExplorer
	case strings.Contains(timeCommitment, "10") || strings.Contains(timeCommitment, "15"):
		return ProfileFocusedBuilder
	default:
		return ProfileSteadyGrower
	}
}
