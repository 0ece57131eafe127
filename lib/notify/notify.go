package notify

import (
	"fmt"
	"strings"

	"fntp-backend/lib/smtp"
	dbmodels "fntp-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Provider informs the practitioner about assessment events. Calls return
// immediately, mail is sent in the background.
type Provider interface {
	RedFlags(client dbmodels.Client, rec dbmodels.Assessment, flags []dbmodels.RedFlag)
	Completed(client dbmodels.Client, rec dbmodels.Assessment, severityReport string)
}

var Instance Provider

func NewHandler(practitionerEmail string) {
	Instance = impl{
		practitionerEmail: practitionerEmail,
		sender:            smtp.Instance,
	}
}

type impl struct {
	practitionerEmail string
	sender            smtp.Provider
}

func (i impl) RedFlags(client dbmodels.Client, rec dbmodels.Assessment, flags []dbmodels.RedFlag) {
	if len(flags) == 0 {
		return
	}
	i.send("Red flags in assessment", RedFlagsMessage(client, rec, flags), rec.ID)
}

func (i impl) Completed(client dbmodels.Client, rec dbmodels.Assessment, severityReport string) {
	i.send("Assessment completed", CompletedMessage(client, rec, severityReport), rec.ID)
}

func (i impl) send(subject, message, assessmentID string) {
	logger := log.WithField("assessment_id", assessmentID)
	if i.practitionerEmail == "" || i.sender == nil {
		logger.Debug("уведомление не отправлено, не указан email специалиста")
		return
	}
	go func() {
		err := i.sender.SendEMail(i.practitionerEmail, subject, message)
		if err != nil {
			logger.WithError(err).Error("ошибка отправки уведомления специалисту")
		}
	}()
}

func RedFlagsMessage(client dbmodels.Client, rec dbmodels.Assessment, flags []dbmodels.RedFlag) string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("Client %s reported answers that need your attention.\n\n", client.FullName()))
	for _, flag := range flags {
		b.WriteString(fmt.Sprintf("- %s (question %s)\n", flag.Message, flag.QuestionID))
	}
	b.WriteString(fmt.Sprintf("\nAssessment: %s\n", rec.ID))
	return b.String()
}

func CompletedMessage(client dbmodels.Client, rec dbmodels.Assessment, severityReport string) string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("Client %s completed the %s assessment.\n", client.FullName(), rec.TemplateName))
	b.WriteString(fmt.Sprintf("Questions answered: %d\n", rec.QuestionsAsked))
	if len(rec.RedFlags) > 0 {
		b.WriteString(fmt.Sprintf("Red flags: %d\n", len(rec.RedFlags)))
	}
	b.WriteString("\n")
	b.WriteString(severityReport)
	b.WriteString(fmt.Sprintf("\nAssessment: %s\n", rec.ID))
	return b.String()
}
