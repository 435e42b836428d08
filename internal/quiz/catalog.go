package quiz

type StepType string

const (
	StepSingleChoice StepType = "single"
	StepMultiChoice  StepType = "multi"
	StepFreeText     StepType = "freetext"
)

// StepDefinition describes one question screen of the funnel. Display text is
// resolved by the client from the translation key; the server only deals in
// option codes.
type StepDefinition struct {
	Type           StepType `json:"type"`
	TranslationKey string   `json:"translation_key"`
	Options        []string `json:"options,omitempty"`
}

// Steps is the fixed funnel, in order. Choices are analyzable so the AI can
// compare the user's answers to stronger practices and produce an improvement
// plan.
var Steps = []StepDefinition{
	{
		Type:           StepSingleChoice,
		TranslationKey: "step1",
		Options: []string{
			"debug_console",
			"debug_debugger",
			"debug_stack_trace",
			"debug_rubber_duck",
			"debug_search_error",
		},
	},
	{
		Type:           StepSingleChoice,
		TranslationKey: "step2",
		Options: []string{
			"stuck_google_first",
			"stuck_try_then_ask",
			"stuck_docs_first",
			"stuck_ask_teammate",
			"stuck_take_break",
		},
	},
	{
		Type:           StepSingleChoice,
		TranslationKey: "step3",
		Options: []string{
			"codebase_dive_in",
			"codebase_readme_first",
			"codebase_trace_flow",
			"codebase_ask_walkthrough",
			"codebase_own_only",
		},
	},
	{
		Type:           StepMultiChoice,
		TranslationKey: "step4",
		Options: []string{
			"habit_tests",
			"habit_code_review",
			"habit_refactor",
			"habit_read_watch",
			"habit_system_design",
		},
	},
	{
		Type:           StepSingleChoice,
		TranslationKey: "step5",
		Options: []string{
			"feedback_fix_move_on",
			"feedback_note_pattern",
			"feedback_ask_why",
			"feedback_discouraged",
		},
	},
	{
		Type:           StepFreeText,
		TranslationKey: "step6",
	},
}

var TotalSteps = len(Steps)

// OptionLabels maps option codes to the human-readable English text used when
// building the AI prompt.
var OptionLabels = map[string]string{
	"debug_console":      "Add console.log and narrow it down",
	"debug_debugger":     "Use the debugger (breakpoints)",
	"debug_stack_trace":  "Read the stack trace and follow the code path",
	"debug_rubber_duck":  "Explain to someone or a rubber duck first",
	"debug_search_error": "Search the error message and try fixes from the web",

	"stuck_google_first": "Google or search for a solution right away",
	"stuck_try_then_ask": "Try 30+ minutes on my own, then ask for help",
	"stuck_docs_first":   "Read official docs or source code first",
	"stuck_ask_teammate": "Ask a teammate or mentor for direction",
	"stuck_take_break":   "Take a break and come back later",

	"codebase_dive_in":         "Dive in and make small changes to see what happens",
	"codebase_readme_first":    "Read README and main entry points first",
	"codebase_trace_flow":      "Trace one user flow or feature end-to-end",
	"codebase_ask_walkthrough": "Ask the team for a walkthrough or pairing",
	"codebase_own_only":        "Rarely; I usually maintain my own code",

	"habit_tests":         "Write tests for my code",
	"habit_code_review":   "Do code reviews for others",
	"habit_refactor":      "Refactor or improve existing code without being asked",
	"habit_read_watch":    "Read technical blogs or watch talks",
	"habit_system_design": "Practice system design or algorithms",

	"feedback_fix_move_on":  "Fix the comments and move on quickly",
	"feedback_note_pattern": "Note the pattern so I don't repeat it",
	"feedback_ask_why":      "Ask why and discuss tradeoffs with the reviewer",
	"feedback_discouraged":  "Feel discouraged and put the PR off",
}

// StepLabels names each step when building the AI prompt.
var StepLabels = []string{
	"How they debug",
	"What they do when stuck",
	"How they learn a new codebase",
	"Habits they do regularly",
	"How they handle code review feedback",
	"Career or skill goal (free text)",
}

// Progress returns the display percentage for a zero-based step index.
func Progress(step int) int {
	if TotalSteps == 0 {
		return 0
	}
	return int(float64(step+1)/float64(TotalSteps)*100 + 0.5)
}
