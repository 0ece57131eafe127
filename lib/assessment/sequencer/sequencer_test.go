package sequencer

import (
	"testing"
	"time"

	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func answer(tpl *questionbank.Template, id string, minute int) dbmodels.AssessmentResponse {
	q, _ := tpl.Question(id)
	return dbmodels.AssessmentResponse{
		QuestionID:     id,
		QuestionModule: q.Module,
		AnsweredAt:     baseTime.Add(time.Duration(minute) * time.Minute),
	}
}

func answerModule(tpl *questionbank.Template, module models.FunctionalModule, start int) []dbmodels.AssessmentResponse {
	var result []dbmodels.AssessmentResponse
	for i, q := range tpl.QuestionsByModule(module) {
		result = append(result, answer(tpl, q.ID, start+i))
	}
	return result
}

func TestSequencer(t *testing.T) {
	tpl := questionbank.Full()
	seq := New(tpl, false)

	t.Run(`no responses returns first question`, func(t *testing.T) {
		res, err := seq.Next(models.ModuleScreening, nil)
		require.Nil(t, err)
		require.Equal(t, "SCR001", res.Question.ID)
		require.False(t, res.ModuleChanged)
		require.False(t, res.Completed)
	})

	t.Run(`empty current module defaults to first module`, func(t *testing.T) {
		res, err := seq.Next("", nil)
		require.Nil(t, err)
		require.Equal(t, models.ModuleScreening, res.Module)
	})

	t.Run(`returns question after last answered`, func(t *testing.T) {
		responses := []dbmodels.AssessmentResponse{
			answer(tpl, "SCR001", 0),
			answer(tpl, "SCR_SO01", 1),
		}
		res, err := seq.Next(models.ModuleScreening, responses)
		require.Nil(t, err)
		require.Equal(t, "essential-chronic-impact", res.Question.ID)
		require.Equal(t, models.ModuleScreening, res.Question.Module)
	})

	t.Run(`most recent answer wins over list order`, func(t *testing.T) {
		responses := []dbmodels.AssessmentResponse{
			answer(tpl, "SCR004", 0),
			answer(tpl, "SCR001", 5),
		}
		res, err := seq.Next(models.ModuleScreening, responses)
		require.Nil(t, err)
		require.Equal(t, "SCR_SO01", res.Question.ID)
	})

	t.Run(`ties broken by list position`, func(t *testing.T) {
		responses := []dbmodels.AssessmentResponse{
			answer(tpl, "SCR_SO01", 0),
			answer(tpl, "SCR001", 0),
		}
		res, err := seq.Next(models.ModuleScreening, responses)
		require.Nil(t, err)
		require.Equal(t, "essential-chronic-impact", res.Question.ID)
	})

	t.Run(`exhausted module advances`, func(t *testing.T) {
		responses := answerModule(tpl, models.ModuleScreening, 0)
		res, err := seq.Next(models.ModuleScreening, responses)
		require.Nil(t, err)
		require.True(t, res.ModuleChanged)
		require.Equal(t, models.ModuleAssimilation, res.Module)
		require.Equal(t, models.ModuleAssimilation, res.Question.Module)
		require.Equal(t, "essential-digest-severity", res.Question.ID)
	})

	t.Run(`last module exhausted completes`, func(t *testing.T) {
		responses := answerModule(tpl, models.ModuleStructural, 0)
		res, err := seq.Next(models.ModuleStructural, responses)
		require.Nil(t, err)
		require.True(t, res.Completed)
		require.Nil(t, res.Question)
	})

	t.Run(`unknown module`, func(t *testing.T) {
		_, err := seq.Next("NUTRITION", nil)
		require.NotNil(t, err)
	})
}

func TestSequencerEmptyModule(t *testing.T) {
	tpl, err := questionbank.NewTemplate("sparse", "1", []questionbank.Question{
		{ID: "A1", Module: models.ModuleScreening},
		{ID: "C1", Module: models.ModuleDefenseRepair},
	})
	require.Nil(t, err)
	seq := New(tpl, false)

	res, err := seq.Next(models.ModuleScreening, []dbmodels.AssessmentResponse{answer(tpl, "A1", 0)})
	require.Nil(t, err)
	require.Equal(t, models.ModuleDefenseRepair, res.Module)
	require.Equal(t, "C1", res.Question.ID)

	res, err = seq.Next(models.ModuleDefenseRepair, []dbmodels.AssessmentResponse{
		answer(tpl, "A1", 0),
		answer(tpl, "C1", 1),
	})
	require.Nil(t, err)
	require.True(t, res.Completed)
}

func TestSequencerUnknownLastAnswer(t *testing.T) {
	tpl := questionbank.Full()
	responses := []dbmodels.AssessmentResponse{
		answer(tpl, "SCR001", 0),
		{
			QuestionID:     "SCR_REMOVED",
			QuestionModule: models.ModuleScreening,
			AnsweredAt:     baseTime.Add(time.Hour),
		},
	}

	t.Run(`lenient restarts from first unanswered`, func(t *testing.T) {
		res, err := New(tpl, false).Next(models.ModuleScreening, responses)
		require.Nil(t, err)
		require.Equal(t, "SCR_SO01", res.Question.ID)
	})

	t.Run(`strict fails`, func(t *testing.T) {
		_, err := New(tpl, true).Next(models.ModuleScreening, responses)
		require.True(t, errors.Is(err, ErrLastAnsweredNotInModule))
	})
}
