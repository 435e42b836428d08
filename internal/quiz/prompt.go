package quiz

import (
	"fmt"
	"strings"
)

// Summarize renders the answers as one prompt line per answered step, in step
// order regardless of how the map was filled, so identical answers always
// produce identical prompt text.
func Summarize(answers Answers) string {
	var lines []string
	for i := 0; i < TotalSteps; i++ {
		value, ok := answers[i]
		if !ok {
			continue
		}
		label := fmt.Sprintf("Step %d", i+1)
		if i < len(StepLabels) {
			label = StepLabels[i]
		}
		var text string
		if value.IsList() {
			resolved := make([]string, 0, len(value.List))
			for _, code := range value.List {
				resolved = append(resolved, resolveLabel(code))
			}
			text = strings.Join(resolved, ", ")
		} else {
			text = resolveLabel(value.Text)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, text))
	}
	return strings.Join(lines, "\n")
}

func resolveLabel(code string) string {
	if label, ok := OptionLabels[code]; ok {
		return label
	}
	return code
}
