package progress

import (
	"testing"

	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/stretchr/testify/require"
)

func fiveQuestionScreening(t *testing.T) *questionbank.Template {
	var questions []questionbank.Question
	for _, id := range []string{"S1", "S2", "S3", "S4", "S5"} {
		questions = append(questions, questionbank.Question{ID: id, Module: models.ModuleScreening})
	}
	questions = append(questions, questionbank.Question{ID: "E1", Module: models.ModuleEnergy})
	tpl, err := questionbank.NewTemplate("test", "1", questions)
	require.Nil(t, err)
	return tpl
}

func responses(module models.FunctionalModule, ids ...string) []dbmodels.AssessmentResponse {
	var result []dbmodels.AssessmentResponse
	for _, id := range ids {
		result = append(result, dbmodels.AssessmentResponse{QuestionID: id, QuestionModule: module})
	}
	return result
}

func TestCalculate(t *testing.T) {
	t.Run(`four of five screening questions`, func(t *testing.T) {
		tpl := fiveQuestionScreening(t)
		calc := NewCalculator(tpl, 30)
		rec := dbmodels.Assessment{CurrentModule: models.ModuleScreening, QuestionsAsked: 4}
		snapshot := calc.Calculate(rec, responses(models.ModuleScreening, "S1", "S2", "S3", "S4"))

		screening, ok := snapshot.Module(models.ModuleScreening)
		require.True(t, ok)
		require.Equal(t, 4, screening.Answered)
		require.Equal(t, 5, screening.Total)
		require.Equal(t, 80, screening.Percentage)

		energy, _ := snapshot.Module(models.ModuleEnergy)
		require.Equal(t, 0, energy.Answered)
		require.Equal(t, 0, energy.Percentage)

		empty, _ := snapshot.Module(models.ModuleStructural)
		require.Equal(t, 0, empty.Total)
		require.Equal(t, 0, empty.Percentage)

		require.Len(t, snapshot.ModuleProgress, 8)
		require.Equal(t, 67, snapshot.OverallPercentage)
		require.Equal(t, 1, snapshot.EstimatedMinutesRemaining)
		require.Equal(t, 0, snapshot.EfficiencyRate)
	})

	t.Run(`full template estimate and efficiency`, func(t *testing.T) {
		calc := NewCalculator(questionbank.Full(), 0)
		rec := dbmodels.Assessment{CurrentModule: models.ModuleScreening, QuestionsAsked: 3, QuestionsSaved: 1}
		snapshot := calc.Calculate(rec, responses(models.ModuleScreening, "SCR001", "SCR_SO01", "SCR001"))
		screening, _ := snapshot.Module(models.ModuleScreening)
		require.Equal(t, 2, screening.Answered)
		require.Equal(t, 25, screening.Percentage)
		// 61 remaining questions at 30 seconds
		require.Equal(t, 31, snapshot.EstimatedMinutesRemaining)
		require.Equal(t, 5, snapshot.OverallPercentage)
		require.Equal(t, 25, snapshot.EfficiencyRate)
	})

	t.Run(`percentage bounds`, func(t *testing.T) {
		require.Equal(t, 0, percentage(3, 0))
		require.Equal(t, 100, percentage(7, 5))
		require.Equal(t, 33, percentage(1, 3))
		require.Equal(t, 67, percentage(2, 3))
		for total := 1; total <= 10; total++ {
			for answered := 0; answered <= total; answered++ {
				p := percentage(answered, total)
				require.True(t, p >= 0 && p <= 100)
			}
		}
	})

	t.Run(`asked beyond total`, func(t *testing.T) {
		tpl := fiveQuestionScreening(t)
		snapshot := NewCalculator(tpl, 30).Calculate(dbmodels.Assessment{QuestionsAsked: 9}, nil)
		require.Equal(t, 100, snapshot.OverallPercentage)
		require.Equal(t, 0, snapshot.EstimatedMinutesRemaining)
	})
}
