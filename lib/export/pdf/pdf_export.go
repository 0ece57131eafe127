package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"fntp-backend/lib/severity"
	assessmentapimodels "fntp-backend/models/api/assessment"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type SeverityReportData struct {
	PracticeName string
	ClientName   string
	Assessment   assessmentapimodels.AssessmentView
	Scores       []severity.Score
}

const (
	fontFamily = "Helvetica"
	lineHt     = 6.0
)

var scoreColumns = []struct {
	title string
	width float64
}{
	{"Area", 45},
	{"Score", 20},
	{"Priority", 25},
	{"Interpretation", 100},
}

func GenerateSeverityReport(data SeverityReportData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSeverityReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Severity report", true)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(data.PracticeName), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, lineHt, tr(fmt.Sprintf("Client: %s", data.ClientName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHt, tr(fmt.Sprintf("Assessment: %s (%s, %s)", data.Assessment.ID,
		data.Assessment.Template, data.Assessment.Status)), "", 1, "L", false, 0, "")
	if data.Assessment.CompletedAt != nil {
		pdf.CellFormat(0, lineHt, fmt.Sprintf("Completed: %s", data.Assessment.CompletedAt.Format(time.DateOnly)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, "Severity Assessment Summary", "", 1, "L", false, 0, "")
	if len(data.Scores) == 0 {
		pdf.SetFont(fontFamily, "", 11)
		pdf.MultiCell(0, lineHt, severity.EmptyReport, "", "L", false)
	} else {
		writeScoreTable(pdf, tr, data.Scores)
	}

	if len(data.Assessment.RedFlags) > 0 {
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "B", 13)
		pdf.CellFormat(0, 8, "Red Flags", "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		for _, flag := range data.Assessment.RedFlags {
			pdf.MultiCell(0, lineHt, tr(fmt.Sprintf("- %s (question %s, answer %d)", flag.Message, flag.QuestionID, flag.Value)), "", "L", false)
		}
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeScoreTable(pdf *fpdf.Fpdf, tr func(string) string, scores []severity.Score) {
	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for _, column := range scoreColumns {
		pdf.CellFormat(column.width, 8, column.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 10)
	for _, score := range scores {
		values := []string{
			score.Category,
			fmt.Sprintf("%d/5", score.Score),
			string(score.Priority),
			score.Interpretation,
		}
		for idx, column := range scoreColumns {
			pdf.CellFormat(column.width, 7, tr(values[idx]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
