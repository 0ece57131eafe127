package progress

import (
	"math"

	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"
)

const DefaultAverageSecondsPerQuestion = 30

type ModuleProgress struct {
	Module     models.FunctionalModule `json:"module"`
	Title      string                  `json:"title"`
	Answered   int                     `json:"answered"`
	Total      int                     `json:"total"`
	Percentage int                     `json:"percentage"`
}

type Snapshot struct {
	CurrentModule             models.FunctionalModule `json:"current_module"`
	ModuleProgress            []ModuleProgress        `json:"module_progress"`
	OverallPercentage         int                     `json:"overall_percentage"`
	QuestionsAsked            int                     `json:"questions_asked"`
	QuestionsSaved            int                     `json:"questions_saved"`
	TotalQuestions            int                     `json:"total_questions"`
	EstimatedMinutesRemaining int                     `json:"estimated_minutes_remaining"`
	EfficiencyRate            int                     `json:"efficiency_rate"`
}

func (s Snapshot) Module(module models.FunctionalModule) (ModuleProgress, bool) {
	for _, item := range s.ModuleProgress {
		if item.Module == module {
			return item, true
		}
	}
	return ModuleProgress{}, false
}

type Calculator struct {
	tpl        *questionbank.Template
	avgSeconds int
}

func NewCalculator(tpl *questionbank.Template, avgSecondsPerQuestion int) *Calculator {
	if avgSecondsPerQuestion <= 0 {
		avgSecondsPerQuestion = DefaultAverageSecondsPerQuestion
	}
	return &Calculator{
		tpl:        tpl,
		avgSeconds: avgSecondsPerQuestion,
	}
}

// Calculate derives a snapshot from persisted state, it has no side effects.
func (c *Calculator) Calculate(rec dbmodels.Assessment, responses []dbmodels.AssessmentResponse) Snapshot {
	answered := map[models.FunctionalModule]map[string]bool{}
	for _, response := range responses {
		if answered[response.QuestionModule] == nil {
			answered[response.QuestionModule] = map[string]bool{}
		}
		answered[response.QuestionModule][response.QuestionID] = true
	}

	total := c.tpl.Total()
	result := Snapshot{
		CurrentModule:     rec.CurrentModule,
		ModuleProgress:    make([]ModuleProgress, 0, len(c.tpl.Modules())),
		OverallPercentage: percentage(rec.QuestionsAsked, total),
		QuestionsAsked:    rec.QuestionsAsked,
		QuestionsSaved:    rec.QuestionsSaved,
		TotalQuestions:    total,
		EfficiencyRate:    efficiency(rec.QuestionsAsked, rec.QuestionsSaved),
	}
	for _, module := range c.tpl.Modules() {
		moduleTotal := c.tpl.ModuleTotal(module)
		count := len(answered[module])
		result.ModuleProgress = append(result.ModuleProgress, ModuleProgress{
			Module:     module,
			Title:      module.Title(),
			Answered:   count,
			Total:      moduleTotal,
			Percentage: percentage(count, moduleTotal),
		})
	}
	remaining := total - rec.QuestionsAsked
	if remaining < 0 {
		remaining = 0
	}
	result.EstimatedMinutesRemaining = int(math.Ceil(float64(remaining*c.avgSeconds) / 60))
	return result
}

func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	value := int(math.Round(100 * float64(part) / float64(total)))
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func efficiency(asked, saved int) int {
	if asked+saved == 0 {
		return 0
	}
	return int(math.Round(100 * float64(saved) / float64(asked+saved)))
}
