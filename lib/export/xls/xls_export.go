package xlsexport

import (
	"bytes"

	"fntp-backend/lib/questionbank"
	"fntp-backend/lib/severity"
	"fntp-backend/models"
	assessmentapimodels "fntp-backend/models/api/assessment"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	responsesSheet = "Responses"
	severitySheet  = "Severity"
)

var responseHeaders = []string{"Module", "Question ID", "Question", "Answer", "Value", "Answered at"}

var severityHeaders = []string{"Area", "Score", "Priority", "Interpretation"}

func ExportAssessment(responses []assessmentapimodels.ResponseView, scores []severity.Score) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, responseHeaders, 3)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(responses) != 0 {
		_, err = writeResponseData(f, sheet, responses, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы ответов в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, responsesSheet); err != nil {
		return nil, err
	}

	if _, err = f.NewSheet(severitySheet); err != nil {
		return nil, err
	}
	row, err = writeHeader(f, severitySheet, 0, severityHeaders, 4)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(scores) != 0 {
		_, err = writeSeverityData(f, severitySheet, scores, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы тяжести в xlsx")
		}
	}
	return f.WriteToBuffer()
}

func writeResponseData(f *excelize.File, sheet string, list []assessmentapimodels.ResponseView, row int) (int, error) {
	style, err := dataStyle(f, "")
	if err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		answer := item.Text
		if q, ok := questionbank.Full().Question(item.QuestionID); ok {
			answer = q.AnswerLabel(item.Value, item.Text)
		}
		values := []interface{}{item.Module.Title(), item.QuestionID, item.QuestionText, answer, item.Value,
			item.AnsweredAt.Format("02.01.2006 15:04")}
		if err = writeRow(f, sheet, row, values); err != nil {
			return row, err
		}
		if err = applyRowStyle(f, sheet, row, len(responseHeaders), style); err != nil {
			return row, err
		}
	}
	return row, nil
}

// writeSeverityData fills each score row with its priority color.
func writeSeverityData(f *excelize.File, sheet string, list []severity.Score, row int) (int, error) {
	styles := map[models.Priority]int{}
	for _, item := range list {
		row++
		style, ok := styles[item.Priority]
		if !ok {
			var err error
			style, err = dataStyle(f, priorityFill[item.Priority])
			if err != nil {
				return row, err
			}
			styles[item.Priority] = style
		}
		values := []interface{}{item.Category, item.Score, string(item.Priority), item.Interpretation}
		if err := writeRow(f, sheet, row, values); err != nil {
			return row, err
		}
		if err := applyRowStyle(f, sheet, row, len(severityHeaders), style); err != nil {
			return row, err
		}
	}
	return row, nil
}
