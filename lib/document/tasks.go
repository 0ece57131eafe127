package document

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"strings"

	"fntp-backend/lib/metrics"
	"fntp-backend/models"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

const (
	TypeDocumentAnalyze = "document:analyze"

	unsupportedContent = "unsupported content"
	maxPromptChars     = 12000
	analysisKind       = "document"
)

type AnalyzePayload struct {
	DocumentID string `json:"document_id"`
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewAnalyzeTask(documentID string) (*asynq.Task, error) {
	payload, err := json.Marshal(AnalyzePayload{DocumentID: documentID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDocumentAnalyze, payload), nil
}

func AnalyzeTaskID(documentID string) string {
	return "document-analyze-" + documentID
}

func RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeDocumentAnalyze, func(ctx context.Context, t *asynq.Task) error {
		return Instance.HandleAnalyzeTask(ctx, t)
	})
}

const documentPrompt = `You are an assistant to a functional nutrition practitioner.
Summarise the lab report or health document below. List values outside the reference range,
group them by body system and note what the practitioner may want to discuss with the client.
Do not diagnose. Answer in Markdown.`

func (i impl) HandleAnalyzeTask(ctx context.Context, t *asynq.Task) error {
	var payload AnalyzePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return errors.Wrapf(asynq.SkipRetry, "некорректные данные задачи: %v", err)
	}
	logger := i.getLogger(payload.DocumentID)
	rec, err := i.store.GetByID(payload.DocumentID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения документа")
	}
	if rec == nil {
		logger.Warn("документ для анализа не найден, задача пропущена")
		return nil
	}
	if !isText(rec.ContentType) {
		logger.WithField("content_type", rec.ContentType).Info("документ не поддерживается для анализа")
		return i.setStatus(rec.ID, models.DocumentStatusFailed, "", unsupportedContent)
	}
	if i.ai == nil {
		return i.setStatus(rec.ID, models.DocumentStatusFailed, "", "AI provider is not configured")
	}
	err = i.setStatus(rec.ID, models.DocumentStatusAnalyzing, "", "")
	if err != nil {
		return err
	}
	data, err := i.storage.GetObject(ctx, rec.ObjectKey)
	if err != nil {
		_ = i.setStatus(rec.ID, models.DocumentStatusFailed, "", "file is not available")
		return err
	}
	text := string(data)
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}
	analysis, err := i.ai.Complete(ctx, documentPrompt, fmt.Sprintf("Document: %s\n\n%s", rec.Name, text))
	if err != nil {
		_ = i.setStatus(rec.ID, models.DocumentStatusFailed, "", "analysis failed")
		return errors.Wrap(err, "ошибка анализа документа")
	}
	err = i.setStatus(rec.ID, models.DocumentStatusAnalyzed, analysis, "")
	if err != nil {
		return err
	}
	logger.Info("документ проанализирован")
	return nil
}

func (i impl) setStatus(id string, status models.DocumentStatus, analysis, reason string) error {
	switch status {
	case models.DocumentStatusAnalyzed:
		metrics.Analyses.WithLabelValues(analysisKind, metrics.ResultSuccess).Inc()
	case models.DocumentStatusFailed:
		metrics.Analyses.WithLabelValues(analysisKind, metrics.ResultFailure).Inc()
	}
	updMap := map[string]interface{}{
		"status": status,
		"error":  reason,
	}
	if analysis != "" {
		updMap["analysis"] = analysis
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления статуса документа")
	}
	return nil
}

func isText(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	switch mediaType {
	case "application/json", "application/xml":
		return true
	}
	return false
}
