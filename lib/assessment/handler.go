package assessment

import (
	"context"
	"fmt"
	"time"

	"fntp-backend/db"
	"fntp-backend/lib/assessment/progress"
	"fntp-backend/lib/metrics"
	responsestore "fntp-backend/lib/assessment/response-store"
	"fntp-backend/lib/assessment/sequencer"
	assessmentstore "fntp-backend/lib/assessment/store"
	clientstore "fntp-backend/lib/client/store"
	"fntp-backend/lib/notify"
	"fntp-backend/lib/questionbank"
	"fntp-backend/lib/severity"
	"fntp-backend/lib/utils/lock"
	connectionhub "fntp-backend/lib/ws/hub/connection-hub"
	"fntp-backend/models"
	assessmentapimodels "fntp-backend/models/api/assessment"
	severityapimodels "fntp-backend/models/api/severity"
	dbmodels "fntp-backend/models/db"
	wsmodels "fntp-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Start(clientID string) (result assessmentapimodels.StartResult, err error)
	Submit(id string, req assessmentapimodels.SubmitRequest) (result assessmentapimodels.SubmitResult, hMsg string, err error)
	NextQuestion(id string) (assessmentapimodels.NextQuestionView, error)
	Progress(id string) (progress.Snapshot, error)
	Pause(id string) (hMsg string, err error)
	Resume(id string) (result assessmentapimodels.StartResult, hMsg string, err error)
	Get(id string) (assessmentapimodels.AssessmentView, error)
	ListByClient(clientID string) ([]assessmentapimodels.AssessmentView, error)
	Responses(id string) ([]assessmentapimodels.ResponseView, error)
	Severity(id string) (severityapimodels.Report, error)
	SeverityReport(responses []severity.Response) severityapimodels.Report
	CheckAccess(id string, access Access) error
}

// Access identifies the caller, either a practitioner (JWT) or a client (X-Client-ID).
type Access struct {
	PractitionerID string
	ClientID       string
}

type Options struct {
	DefaultTemplate           string
	StrictSequencing          bool
	AverageSecondsPerQuestion int
}

var Instance Provider

func NewHandler(opts Options) error {
	i, err := newImpl(opts,
		assessmentstore.NewInstance(db.DB),
		responsestore.NewInstance(db.DB),
		clientstore.NewInstance(db.DB),
		notify.Instance,
		connectionhub.Instance,
	)
	if err != nil {
		return err
	}
	Instance = i
	return nil
}

type engine struct {
	tpl      *questionbank.Template
	seq      *sequencer.Sequencer
	calc     *progress.Calculator
	analyzer *severity.Analyzer
}

type impl struct {
	assessmentStore assessmentstore.Provider
	responseStore   responsestore.Provider
	clientStore     clientstore.Provider
	notifier        notify.Provider
	hub             connectionhub.Provider
	engines         map[string]engine
	defaultTemplate string
	now             func() time.Time
}

func newImpl(opts Options, assessmentStore assessmentstore.Provider, responseStore responsestore.Provider,
	clientStore clientstore.Provider, notifier notify.Provider, hub connectionhub.Provider) (*impl, error) {
	if opts.DefaultTemplate == "" {
		opts.DefaultTemplate = questionbank.TemplateFull
	}
	if _, err := questionbank.ByName(opts.DefaultTemplate); err != nil {
		return nil, err
	}
	engines := map[string]engine{}
	for _, name := range questionbank.Names() {
		tpl, err := questionbank.ByName(name)
		if err != nil {
			return nil, err
		}
		engines[name] = engine{
			tpl:      tpl,
			seq:      sequencer.New(tpl, opts.StrictSequencing),
			calc:     progress.NewCalculator(tpl, opts.AverageSecondsPerQuestion),
			analyzer: severity.NewAnalyzer(tpl),
		}
	}
	return &impl{
		assessmentStore: assessmentStore,
		responseStore:   responseStore,
		clientStore:     clientStore,
		notifier:        notifier,
		hub:             hub,
		engines:         engines,
		defaultTemplate: opts.DefaultTemplate,
		now:             func() time.Time { return time.Now().UTC() },
	}, nil
}

func (i impl) getLogger(id string) *log.Entry {
	return log.WithField("assessment_id", id)
}

func (i impl) Start(clientID string) (result assessmentapimodels.StartResult, err error) {
	client, err := i.clientStore.GetByID(clientID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения клиента")
	}
	if client == nil {
		return result, errors.Wrapf(models.ErrNotFound, "client %s", clientID)
	}
	rec, err := i.assessmentStore.GetActiveByClient(clientID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения активного опроса клиента")
	}
	if rec != nil {
		if rec.Status == models.AssessmentStatusPaused {
			err = i.resume(rec)
			if err != nil {
				return result, err
			}
		}
		return i.startResult(*rec, true)
	}

	eng := i.engines[i.defaultTemplate]
	now := i.now()
	rec = &dbmodels.Assessment{
		ClientID:        clientID,
		TemplateName:    eng.tpl.Name(),
		TemplateVersion: eng.tpl.Version(),
		Status:          models.AssessmentStatusInProgress,
		CurrentModule:   eng.tpl.FirstModule(),
		StartedAt:       now,
		LastActiveAt:    now,
		RedFlags:        dbmodels.RedFlags{},
	}
	rec.ID, err = i.assessmentStore.Create(*rec)
	if err != nil {
		return result, errors.Wrap(err, "ошибка создания опроса")
	}
	i.getLogger(rec.ID).
		WithField("client_id", clientID).
		WithField("template", rec.TemplateName).
		Info("опрос создан")
	return i.startResult(*rec, false)
}

func (i impl) Resume(id string) (result assessmentapimodels.StartResult, hMsg string, err error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return result, "", err
	}
	if rec.Status != models.AssessmentStatusPaused {
		return result, fmt.Sprintf("only a paused assessment can be resumed, current status is %s", rec.Status), nil
	}
	err = i.resume(rec)
	if err != nil {
		return result, "", err
	}
	result, err = i.startResult(*rec, true)
	return result, "", err
}

func (i impl) Pause(id string) (hMsg string, err error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return "", err
	}
	if rec.Status != models.AssessmentStatusInProgress {
		return fmt.Sprintf("only an assessment in progress can be paused, current status is %s", rec.Status), nil
	}
	updMap := map[string]interface{}{
		"status":         models.AssessmentStatusPaused,
		"last_active_at": i.now(),
	}
	err = i.assessmentStore.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка приостановки опроса")
	}
	i.getLogger(id).Info("опрос приостановлен")
	return "", nil
}

const submitLockWait = 5 * time.Second

// Submit serializes submissions of one assessment so the sequencer sees every stored response.
func (i impl) Submit(id string, req assessmentapimodels.SubmitRequest) (result assessmentapimodels.SubmitResult, hMsg string, err error) {
	ok, err := lock.WithDelay(context.Background(), "assessment:"+id, submitLockWait, func() error {
		var submitErr error
		result, hMsg, submitErr = i.submit(id, req)
		return submitErr
	})
	if err != nil {
		return result, "", err
	}
	if !ok {
		hMsg = "assessment is being updated, try again"
	}
	if hMsg != "" {
		metrics.Submissions.WithLabelValues(metrics.ResultRejected).Inc()
		return result, hMsg, nil
	}
	metrics.Submissions.WithLabelValues(metrics.ResultAccepted).Inc()
	return result, "", nil
}

func (i impl) submit(id string, req assessmentapimodels.SubmitRequest) (result assessmentapimodels.SubmitResult, hMsg string, err error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return result, "", err
	}
	switch rec.Status {
	case models.AssessmentStatusCompleted:
		return result, "assessment is already completed", nil
	case models.AssessmentStatusPaused:
		return result, "assessment is paused, resume it before submitting responses", nil
	}
	eng, err := i.engine(*rec)
	if err != nil {
		return result, "", err
	}
	question, ok := eng.tpl.Question(req.QuestionID)
	if !ok {
		return result, fmt.Sprintf("unknown question %s", req.QuestionID), nil
	}
	if msg := question.ValidateAnswer(req.Value, req.Text); msg != "" {
		return result, fmt.Sprintf("question %s: %s", question.ID, msg), nil
	}

	now := i.now()
	text := req.Text
	if question.Type == models.QuestionTypeFrequency {
		// метка нужна анализатору тяжести
		text = question.AnswerLabel(req.Value, "")
	}
	err = i.responseStore.Upsert(dbmodels.AssessmentResponse{
		AssessmentID:   rec.ID,
		QuestionID:     question.ID,
		QuestionModule: question.Module,
		QuestionText:   question.Text,
		ResponseType:   question.Type,
		ResponseValue:  req.Value,
		ResponseText:   text,
		AnsweredAt:     now,
	})
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка сохранения ответа")
	}
	responses, err := i.responseStore.ListByAssessment(rec.ID)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка получения ответов")
	}

	rec.QuestionsAsked = len(responses)
	rec.LastActiveAt = now
	updMap := map[string]interface{}{
		"questions_asked": rec.QuestionsAsked,
		"last_active_at":  now,
	}
	next, err := eng.seq.Next(rec.CurrentModule, responses)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка определения следующего вопроса")
	}
	if next.ModuleChanged {
		rec.CurrentModule = next.Module
		updMap["current_module"] = next.Module
	}
	if next.Completed || answeredAll(eng.tpl, responses) {
		i.complete(rec, updMap, now)
	}
	newFlags := redFlags(question, req.Value, rec.RedFlags, now)
	if len(newFlags) > 0 {
		rec.RedFlags = append(rec.RedFlags, newFlags...)
		updMap["red_flags"] = rec.RedFlags
	}
	err = i.assessmentStore.Update(rec.ID, updMap)
	if err != nil {
		return result, "", errors.Wrap(err, "ошибка обновления опроса")
	}

	snapshot := eng.calc.Calculate(*rec, responses)
	i.afterSubmit(*rec, eng, responses, newFlags, snapshot)
	return assessmentapimodels.SubmitResult{
		Accepted:      true,
		Status:        rec.Status,
		CurrentModule: rec.CurrentModule,
		RedFlags:      newFlags,
		Progress:      snapshot,
	}, "", nil
}

func (i impl) NextQuestion(id string) (result assessmentapimodels.NextQuestionView, err error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return result, err
	}
	eng, err := i.engine(*rec)
	if err != nil {
		return result, err
	}
	responses, err := i.responseStore.ListByAssessment(rec.ID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения ответов")
	}
	question, err := i.current(rec, eng, responses)
	if err != nil {
		return result, err
	}
	return assessmentapimodels.NextQuestionView{
		Question:  question,
		Module:    rec.CurrentModule,
		Completed: rec.IsCompleted(),
		Progress:  eng.calc.Calculate(*rec, responses),
	}, nil
}

func (i impl) Progress(id string) (progress.Snapshot, error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return progress.Snapshot{}, err
	}
	eng, err := i.engine(*rec)
	if err != nil {
		return progress.Snapshot{}, err
	}
	responses, err := i.responseStore.ListByAssessment(rec.ID)
	if err != nil {
		return progress.Snapshot{}, errors.Wrap(err, "ошибка получения ответов")
	}
	return eng.calc.Calculate(*rec, responses), nil
}

func (i impl) Get(id string) (assessmentapimodels.AssessmentView, error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return assessmentapimodels.AssessmentView{}, err
	}
	return assessmentapimodels.AssessmentConvert(*rec), nil
}

func (i impl) ListByClient(clientID string) ([]assessmentapimodels.AssessmentView, error) {
	list, err := i.assessmentStore.ListByClient(clientID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка опросов клиента")
	}
	result := make([]assessmentapimodels.AssessmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, assessmentapimodels.AssessmentConvert(rec))
	}
	return result, nil
}

func (i impl) Responses(id string) ([]assessmentapimodels.ResponseView, error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return nil, err
	}
	list, err := i.responseStore.ListByAssessment(rec.ID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения ответов")
	}
	result := make([]assessmentapimodels.ResponseView, 0, len(list))
	for _, response := range list {
		result = append(result, assessmentapimodels.ResponseConvert(response))
	}
	return result, nil
}

func (i impl) Severity(id string) (severityapimodels.Report, error) {
	rec, err := i.getAssessment(id)
	if err != nil {
		return severityapimodels.Report{}, err
	}
	eng, err := i.engine(*rec)
	if err != nil {
		return severityapimodels.Report{}, err
	}
	responses, err := i.responseStore.ListByAssessment(rec.ID)
	if err != nil {
		return severityapimodels.Report{}, errors.Wrap(err, "ошибка получения ответов")
	}
	return severityReport(eng.analyzer, SeverityResponses(responses)), nil
}

func (i impl) SeverityReport(responses []severity.Response) severityapimodels.Report {
	return severityReport(i.engines[questionbank.TemplateFull].analyzer, responses)
}

func (i impl) CheckAccess(id string, access Access) error {
	rec, err := i.getAssessment(id)
	if err != nil {
		return err
	}
	if access.ClientID != "" && rec.ClientID != access.ClientID {
		return errors.Wrapf(models.ErrNotFound, "assessment %s", id)
	}
	if access.PractitionerID != "" {
		client, err := i.clientStore.GetByID(rec.ClientID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения клиента")
		}
		if client == nil || client.PractitionerID != access.PractitionerID {
			return errors.Wrapf(models.ErrNotFound, "assessment %s", id)
		}
	}
	return nil
}

func (i impl) getAssessment(id string) (*dbmodels.Assessment, error) {
	rec, err := i.assessmentStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения опроса")
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "assessment %s", id)
	}
	return rec, nil
}

func (i impl) engine(rec dbmodels.Assessment) (engine, error) {
	eng, ok := i.engines[rec.TemplateName]
	if !ok {
		return engine{}, errors.Errorf("assessment %s uses unknown template %q", rec.ID, rec.TemplateName)
	}
	return eng, nil
}

func (i impl) resume(rec *dbmodels.Assessment) error {
	now := i.now()
	rec.Status = models.AssessmentStatusInProgress
	rec.ResumeCount++
	rec.LastActiveAt = now
	updMap := map[string]interface{}{
		"status":         rec.Status,
		"resume_count":   rec.ResumeCount,
		"last_active_at": now,
	}
	err := i.assessmentStore.Update(rec.ID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка возобновления опроса")
	}
	i.getLogger(rec.ID).
		WithField("resume_count", rec.ResumeCount).
		Info("опрос возобновлен")
	return nil
}

func (i impl) startResult(rec dbmodels.Assessment, resuming bool) (result assessmentapimodels.StartResult, err error) {
	eng, err := i.engine(rec)
	if err != nil {
		return result, err
	}
	responses, err := i.responseStore.ListByAssessment(rec.ID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения ответов")
	}
	question, err := i.current(&rec, eng, responses)
	if err != nil {
		return result, err
	}
	return assessmentapimodels.StartResult{
		AssessmentID:    rec.ID,
		Status:          rec.Status,
		CurrentQuestion: question,
		Resuming:        resuming,
		Progress:        eng.calc.Calculate(rec, responses),
	}, nil
}

// current runs the sequencer and persists a module advance or completion of an
// assessment in progress.
func (i impl) current(rec *dbmodels.Assessment, eng engine, responses []dbmodels.AssessmentResponse) (*questionbank.Question, error) {
	if rec.IsCompleted() {
		return nil, nil
	}
	next, err := eng.seq.Next(rec.CurrentModule, responses)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка определения следующего вопроса")
	}
	if rec.Status != models.AssessmentStatusInProgress {
		return next.Question, nil
	}
	updMap := map[string]interface{}{}
	if next.ModuleChanged {
		rec.CurrentModule = next.Module
		updMap["current_module"] = next.Module
	}
	if next.Completed {
		i.complete(rec, updMap, i.now())
	}
	err = i.assessmentStore.Update(rec.ID, updMap)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка обновления опроса")
	}
	return next.Question, nil
}

// complete sets completedAt only once.
func (i impl) complete(rec *dbmodels.Assessment, updMap map[string]interface{}, now time.Time) {
	rec.Status = models.AssessmentStatusCompleted
	updMap["status"] = rec.Status
	if rec.CompletedAt == nil {
		rec.CompletedAt = &now
		updMap["completed_at"] = now
	}
}

func (i impl) afterSubmit(rec dbmodels.Assessment, eng engine, responses []dbmodels.AssessmentResponse,
	newFlags []dbmodels.RedFlag, snapshot progress.Snapshot) {
	logger := i.getLogger(rec.ID)
	if i.hub != nil {
		i.hub.SendMessage(wsmodels.NewServerMessage(rec.ID, wsmodels.CodeProgress, snapshot))
		for _, flag := range newFlags {
			i.hub.SendMessage(wsmodels.NewServerMessage(rec.ID, wsmodels.CodeRedFlag, flag))
		}
	}
	if len(newFlags) == 0 && !rec.IsCompleted() {
		return
	}
	client, err := i.clientStore.GetByID(rec.ClientID)
	if err != nil || client == nil {
		logger.WithError(err).Error("ошибка получения клиента для уведомления")
		return
	}
	if len(newFlags) > 0 {
		logger.WithField("red_flags", len(newFlags)).Warn("получены тревожные ответы")
		for _, flag := range newFlags {
			metrics.RedFlags.WithLabelValues(flag.QuestionID).Inc()
		}
		i.notifier.RedFlags(*client, rec, newFlags)
	}
	if rec.IsCompleted() {
		logger.Info("опрос завершен")
		metrics.CompletedAssessments.WithLabelValues(rec.TemplateName).Inc()
		report := severityReport(eng.analyzer, SeverityResponses(responses))
		i.notifier.Completed(*client, rec, report.Markdown)
		if i.hub != nil {
			i.hub.SendMessage(wsmodels.NewServerMessage(rec.ID, wsmodels.CodeCompleted, snapshot))
		}
	}
}

func answeredAll(tpl *questionbank.Template, responses []dbmodels.AssessmentResponse) bool {
	answered := map[string]bool{}
	for _, response := range responses {
		if _, ok := tpl.Question(response.QuestionID); ok {
			answered[response.QuestionID] = true
		}
	}
	return len(answered) >= tpl.Total()
}

// redFlags evaluates the question rule, a question raises at most one flag per assessment.
func redFlags(question questionbank.Question, value int, existing dbmodels.RedFlags, now time.Time) []dbmodels.RedFlag {
	if question.RedFlag == nil || existing.Has(question.ID) {
		return nil
	}
	if !question.RedFlag.Triggered(value) {
		return nil
	}
	return []dbmodels.RedFlag{{
		QuestionID: question.ID,
		Message:    question.RedFlag.Message,
		Value:      value,
		RaisedAt:   now,
	}}
}

func SeverityResponses(list []dbmodels.AssessmentResponse) []severity.Response {
	result := make([]severity.Response, 0, len(list))
	for _, rec := range list {
		result = append(result, severity.Response{
			QuestionID: rec.QuestionID,
			Value:      rec.ResponseValue,
			Text:       rec.ResponseText,
		})
	}
	return result
}

func severityReport(analyzer *severity.Analyzer, responses []severity.Response) severityapimodels.Report {
	scores := analyzer.Analyze(responses)
	return severityapimodels.Report{
		Scores:   scores,
		Markdown: severity.Report(scores),
	}
}
