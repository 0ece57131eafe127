package xlsexport

import (
	"strings"
	"testing"
	"time"

	"fntp-backend/lib/severity"
	"fntp-backend/models"
	assessmentapimodels "fntp-backend/models/api/assessment"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportAssessment(t *testing.T) {
	responses := []assessmentapimodels.ResponseView{
		{QuestionID: "SCR001", Module: models.ModuleScreening, QuestionText: "Rate your fatigue.", Type: models.QuestionTypeLikert, Value: 4, AnsweredAt: time.Now()},
		{QuestionID: "essential-inflammation-frequency", Module: models.ModuleDefenseRepair, QuestionText: "How often?", Type: models.QuestionTypeFrequency, Value: 5, Text: "Daily", AnsweredAt: time.Now()},
	}
	scores := []severity.Score{{Category: "Inflammation", Score: 5, Priority: models.PriorityCritical, Interpretation: "Daily at severity 5/5"}}

	buf, err := ExportAssessment(responses, scores)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows(responsesSheet)
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, responseHeaders, rows[0])
	require.Equal(t, "SCR001", rows[1][1])
	require.Equal(t, "Significant", rows[1][3])
	require.Equal(t, "Daily", rows[2][3])

	rows, err = f.GetRows(severitySheet)
	require.Nil(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "critical", rows[1][2])

	styleID, err := f.GetCellStyle(severitySheet, "A2")
	require.Nil(t, err)
	style, err := f.GetStyle(styleID)
	require.Nil(t, err)
	require.Len(t, style.Fill.Color, 1)
	require.True(t, strings.HasSuffix(strings.ToUpper(style.Fill.Color[0]), priorityFill[models.PriorityCritical]))
}
