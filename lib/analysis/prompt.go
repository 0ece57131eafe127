package analysis

import (
	"fmt"
	"sort"
	"strings"

	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"
)

const systemPrompt = `You are an assistant to a functional nutrition practitioner.
You receive a client's intake assessment grouped by functional module, a severity report and red flags.
Write a concise summary for the practitioner: the main patterns per module, the areas to prioritise,
and which lab markers are worth discussing. Do not diagnose and do not prescribe treatment.
Answer in Markdown.`

// elevated answers are the ones whose lab correlations are passed to the model
func elevated(q questionbank.Question, value int) bool {
	switch q.Type {
	case models.QuestionTypeLikert:
		return value >= 4
	case models.QuestionTypeFrequency:
		return value >= 4
	case models.QuestionTypeYesNo:
		return value == 1
	}
	return false
}

func buildPrompt(tpl *questionbank.Template, rec dbmodels.Assessment, responses []dbmodels.AssessmentResponse, severityReport string) string {
	byQuestion := make(map[string]dbmodels.AssessmentResponse, len(responses))
	for _, response := range responses {
		byQuestion[response.QuestionID] = response
	}
	labs := map[string]bool{}

	var b strings.Builder
	fmt.Fprintf(&b, "Assessment template: %s (version %s)\n", rec.TemplateName, rec.TemplateVersion)
	fmt.Fprintf(&b, "Questions answered: %d of %d\n\n", len(responses), tpl.Total())
	for _, module := range tpl.Modules() {
		lines := []string{}
		for _, q := range tpl.QuestionsByModule(module) {
			response, ok := byQuestion[q.ID]
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("- %s %s", q.Text, q.AnswerLabel(response.ResponseValue, response.ResponseText)))
			if elevated(q, response.ResponseValue) {
				for _, lab := range q.LabCorrelations {
					labs[lab] = true
				}
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", module.Title(), strings.Join(lines, "\n"))
	}

	b.WriteString("## Severity report\n")
	b.WriteString(severityReport)
	if len(rec.RedFlags) > 0 {
		b.WriteString("\n## Red flags\n")
		for _, flag := range rec.RedFlags {
			fmt.Fprintf(&b, "- %s (question %s)\n", flag.Message, flag.QuestionID)
		}
	}
	if len(labs) > 0 {
		names := make([]string, 0, len(labs))
		for lab := range labs {
			names = append(names, lab)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "\n## Lab markers related to elevated answers\n%s\n", strings.Join(names, ", "))
	}
	return b.String()
}
