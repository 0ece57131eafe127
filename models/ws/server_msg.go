package wsmodels

import "time"

type MessageCode string

const (
	CodeProgress  MessageCode = "progress"
	CodeCompleted MessageCode = "completed"
	CodeRedFlag   MessageCode = "red_flag"
)

type ServerMessage struct {
	AssessmentID string      `json:"-"`
	Time         string      `json:"time"` // время события
	Code         MessageCode `json:"code"` // код события
	Data         interface{} `json:"data"`
}

func NewServerMessage(assessmentID string, code MessageCode, data interface{}) ServerMessage {
	return ServerMessage{
		AssessmentID: assessmentID,
		Time:         time.Now().UTC().Format(time.RFC3339),
		Code:         code,
		Data:         data,
	}
}
