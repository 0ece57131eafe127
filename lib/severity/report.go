package severity

import (
	"fmt"
	"strings"

	"fntp-backend/models"
)

const EmptyReport = "No significant symptoms reported requiring severity assessment."

// Report renders scores as a Markdown summary grouped by priority.
func Report(scores []Score) string {
	if len(scores) == 0 {
		return EmptyReport
	}
	var critical, high, other []Score
	for _, score := range scores {
		switch score.Priority {
		case models.PriorityCritical:
			critical = append(critical, score)
		case models.PriorityHigh:
			high = append(high, score)
		default:
			other = append(other, score)
		}
	}

	b := strings.Builder{}
	b.WriteString("## Severity Assessment Summary\n\n")
	writeSection(&b, "### Critical Priority Areas:", critical, true)
	writeSection(&b, "### High Priority Areas:", high, true)
	writeSection(&b, "### Other Areas to Monitor:", other, false)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSection(b *strings.Builder, title string, scores []Score, withScore bool) {
	if len(scores) == 0 {
		return
	}
	b.WriteString(title)
	b.WriteString("\n")
	for _, score := range scores {
		if withScore {
			b.WriteString(fmt.Sprintf("- **%s**: %s (Score: %d/5)\n", score.Category, score.Interpretation, score.Score))
		} else {
			b.WriteString(fmt.Sprintf("- %s: %s\n", score.Category, score.Interpretation))
		}
	}
	b.WriteString("\n")
}
