package severityapimodels

import (
	"fntp-backend/lib/severity"
)

type ReportRequest struct {
	Responses []severity.Response `json:"responses" validate:"required,dive"`
}

type Report struct {
	Scores   []severity.Score `json:"scores"`
	Markdown string           `json:"markdown"`
}
