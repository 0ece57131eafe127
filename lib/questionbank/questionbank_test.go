package questionbank

import (
	"testing"

	"fntp-backend/models"

	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	t.Run(`full template totals are derived from questions`, func(t *testing.T) {
		tpl := Full()
		require.Equal(t, 64, tpl.Total())
		sum := 0
		for _, module := range tpl.Modules() {
			require.Equal(t, len(tpl.QuestionsByModule(module)), tpl.ModuleTotal(module))
			require.True(t, tpl.ModuleTotal(module) > 0)
			sum += tpl.ModuleTotal(module)
		}
		require.Equal(t, tpl.Total(), sum)
	})

	t.Run(`essential template has 30 questions`, func(t *testing.T) {
		tpl := Essential()
		require.Equal(t, 30, tpl.Total())
		for _, module := range tpl.Modules() {
			for _, q := range tpl.QuestionsByModule(module) {
				require.True(t, q.Essential, q.ID)
				require.Equal(t, module, q.Module)
			}
		}
	})

	t.Run(`ByName`, func(t *testing.T) {
		tpl, err := ByName(TemplateEssential)
		require.Nil(t, err)
		require.Equal(t, TemplateEssential, tpl.Name())
		_, err = ByName("quick")
		require.NotNil(t, err)
	})

	t.Run(`unknown module is empty`, func(t *testing.T) {
		require.Empty(t, Full().QuestionsByModule("NUTRITION"))
		require.Equal(t, 0, Full().ModuleTotal("NUTRITION"))
	})

	t.Run(`NextModule follows fixed sequence`, func(t *testing.T) {
		tpl := Full()
		next, ok := tpl.NextModule(models.ModuleScreening)
		require.True(t, ok)
		require.Equal(t, models.ModuleAssimilation, next)
		_, ok = tpl.NextModule(models.ModuleStructural)
		require.False(t, ok)
	})

	t.Run(`cluster refs`, func(t *testing.T) {
		for _, tpl := range []*Template{Full(), Essential()} {
			refs := tpl.ClusterRefs()
			require.Equal(t, "essential-digest-severity", refs[ClusterDigestive].Severity)
			require.Equal(t, "essential-chronic-impact", refs[ClusterChronicConditions].Severity)
			require.Equal(t, ClusterRef{
				Severity:  "essential-inflammation-severity",
				Frequency: "essential-inflammation-frequency",
			}, refs[ClusterInflammation])
			require.Equal(t, ClusterRef{
				Severity:  "essential-anxiety-impact",
				Frequency: "essential-anxiety-frequency",
			}, refs[ClusterMentalHealth])
		}
	})
}

func TestNewTemplate(t *testing.T) {
	t.Run(`duplicate id`, func(t *testing.T) {
		_, err := NewTemplate("x", "1", []Question{
			{ID: "A", Module: models.ModuleScreening},
			{ID: "A", Module: models.ModuleEnergy},
		})
		require.NotNil(t, err)
	})

	t.Run(`unknown module`, func(t *testing.T) {
		_, err := NewTemplate("x", "1", []Question{{ID: "A", Module: "NUTRITION"}})
		require.NotNil(t, err)
	})

	t.Run(`positions are per module`, func(t *testing.T) {
		tpl, err := NewTemplate("x", "1", []Question{
			{ID: "A", Module: models.ModuleScreening},
			{ID: "B", Module: models.ModuleEnergy},
			{ID: "C", Module: models.ModuleScreening},
		})
		require.Nil(t, err)
		pos, ok := tpl.Position("C")
		require.True(t, ok)
		require.Equal(t, 1, pos)
		require.Equal(t, 0, tpl.ModuleTotal(models.ModuleAssimilation))
	})
}

func TestValidateAnswer(t *testing.T) {
	tpl := Full()
	likert, _ := tpl.Question("SCR001")
	require.Equal(t, "", likert.ValidateAnswer(3, ""))
	require.NotEqual(t, "", likert.ValidateAnswer(0, ""))
	require.NotEqual(t, "", likert.ValidateAnswer(6, ""))

	yesNo, _ := tpl.Question("SCR002")
	require.Equal(t, "", yesNo.ValidateAnswer(1, ""))
	require.NotEqual(t, "", yesNo.ValidateAnswer(2, ""))

	freq, _ := tpl.Question("essential-inflammation-frequency")
	require.Equal(t, "", freq.ValidateAnswer(6, ""))
	require.NotEqual(t, "", freq.ValidateAnswer(7, ""))
	require.Equal(t, "Weekly", freq.AnswerLabel(2, ""))

	text, _ := tpl.Question("SCR003")
	require.NotEqual(t, "", text.ValidateAnswer(0, ""))
	require.Equal(t, "", text.ValidateAnswer(0, "sleep better"))
}

func TestRedFlagRule(t *testing.T) {
	rule := RedFlagRule{Operator: RedFlagGte, Threshold: 4}
	require.True(t, rule.Triggered(4))
	require.False(t, rule.Triggered(3))
	rule = RedFlagRule{Operator: RedFlagLte, Threshold: 1}
	require.True(t, rule.Triggered(0))
	require.False(t, rule.Triggered(2))
}
