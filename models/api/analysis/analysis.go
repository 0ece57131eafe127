package analysisapimodels

import (
	"time"

	dbmodels "fntp-backend/models/db"
)

type AnalysisView struct {
	AssessmentID   string    `json:"assessment_id"`
	Provider       string    `json:"provider"`
	Model          string    `json:"model"`
	Summary        string    `json:"summary"`         // текст анализа от AI
	SeverityReport string    `json:"severity_report"` // отчет о тяжести в markdown на момент анализа
	UpdatedAt      time.Time `json:"updated_at"`
}

func AnalysisConvert(rec dbmodels.AssessmentAnalysis) AnalysisView {
	return AnalysisView{
		AssessmentID:   rec.AssessmentID,
		Provider:       rec.Provider,
		Model:          rec.Model,
		Summary:        rec.Summary,
		SeverityReport: rec.SeverityReport,
		UpdatedAt:      rec.UpdatedAt,
	}
}
