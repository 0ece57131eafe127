package analysis

import (
	"context"
	"time"

	"fntp-backend/db"
	"fntp-backend/lib/ai"
	analysisstore "fntp-backend/lib/analysis/store"
	"fntp-backend/lib/assessment"
	responsestore "fntp-backend/lib/assessment/response-store"
	assessmentstore "fntp-backend/lib/assessment/store"
	"fntp-backend/lib/metrics"
	"fntp-backend/lib/questionbank"
	"fntp-backend/lib/severity"
	"fntp-backend/lib/utils/lock"
	"fntp-backend/lib/utils/throttle"
	"fntp-backend/models"
	analysisapimodels "fntp-backend/models/api/analysis"
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Analyze(ctx context.Context, assessmentID string) error
	Get(assessmentID string) (*analysisapimodels.AnalysisView, error)
	RequestReanalysis(ctx context.Context, assessmentID string) (hMsg string, err error)
}

var Instance Provider

func NewHandler(reanalyzeWindow time.Duration) {
	Instance = impl{
		assessmentStore: assessmentstore.NewInstance(db.DB),
		responseStore:   responsestore.NewInstance(db.DB),
		analysisStore:   analysisstore.NewInstance(db.DB),
		ai:              ai.Instance,
		throttle:        throttle.Instance,
		reanalyzeWindow: reanalyzeWindow,
	}
}

type impl struct {
	assessmentStore assessmentstore.Provider
	responseStore   responsestore.Provider
	analysisStore   analysisstore.Provider
	ai              ai.Provider
	throttle        throttle.Provider
	reanalyzeWindow time.Duration
}

const (
	lockWait     = 2 * time.Second
	analysisKind = "assessment"
)

func (i impl) getLogger(assessmentID string) *log.Entry {
	return log.WithField("assessment_id", assessmentID)
}

func (i impl) Analyze(ctx context.Context, assessmentID string) error {
	if i.ai == nil {
		return errors.New("AI провайдер не настроен")
	}
	ok, err := lock.WithDelay(ctx, "analysis:"+assessmentID, lockWait, func() error {
		analyzeErr := i.analyze(ctx, assessmentID)
		metrics.Analyses.WithLabelValues(analysisKind, metrics.Result(analyzeErr)).Inc()
		return analyzeErr
	})
	if err != nil {
		return err
	}
	if !ok {
		i.getLogger(assessmentID).Info("анализ опроса уже выполняется")
	}
	return nil
}

func (i impl) analyze(ctx context.Context, assessmentID string) error {
	logger := i.getLogger(assessmentID)
	rec, err := i.getCompleted(assessmentID)
	if err != nil {
		return err
	}
	tpl, err := questionbank.ByName(rec.TemplateName)
	if err != nil {
		return err
	}
	responses, err := i.responseStore.ListByAssessment(rec.ID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения ответов")
	}
	report := severity.Report(severity.NewAnalyzer(tpl).Analyze(assessment.SeverityResponses(responses)))

	summary, err := i.ai.Complete(ctx, systemPrompt, buildPrompt(tpl, *rec, responses, report))
	if err != nil {
		return errors.Wrap(err, "ошибка получения анализа от AI")
	}
	err = i.analysisStore.Save(dbmodels.AssessmentAnalysis{
		AssessmentID:   rec.ID,
		Provider:       i.ai.Name(),
		Model:          i.ai.Model(),
		SeverityReport: report,
		Summary:        summary,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения анализа")
	}
	err = i.assessmentStore.SetAnalyzed(rec.ID, true)
	if err != nil {
		return errors.Wrap(err, "ошибка установки признака анализа")
	}
	logger.
		WithField("provider", i.ai.Name()).
		Info("анализ опроса сохранен")
	return nil
}

func (i impl) Get(assessmentID string) (*analysisapimodels.AnalysisView, error) {
	rec, err := i.analysisStore.GetByAssessment(assessmentID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения анализа")
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "analysis for assessment %s", assessmentID)
	}
	view := analysisapimodels.AnalysisConvert(*rec)
	return &view, nil
}

// RequestReanalysis returns the assessment to the worker queue, once per window.
func (i impl) RequestReanalysis(ctx context.Context, assessmentID string) (hMsg string, err error) {
	rec, err := i.assessmentStore.GetByID(assessmentID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения опроса")
	}
	if rec == nil {
		return "", errors.Wrapf(models.ErrNotFound, "assessment %s", assessmentID)
	}
	if !rec.IsCompleted() {
		return "only a completed assessment can be analysed", nil
	}
	if i.throttle != nil {
		allowed, err := i.throttle.Allow(ctx, "reanalyze:"+assessmentID, i.reanalyzeWindow)
		if err != nil {
			return "", err
		}
		if !allowed {
			return "analysis was requested recently, try again later", nil
		}
	}
	err = i.assessmentStore.SetAnalyzed(assessmentID, false)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сброса признака анализа")
	}
	i.getLogger(assessmentID).Info("запрошен повторный анализ опроса")
	return "", nil
}

func (i impl) getCompleted(assessmentID string) (*dbmodels.Assessment, error) {
	rec, err := i.assessmentStore.GetByID(assessmentID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения опроса")
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "assessment %s", assessmentID)
	}
	if !rec.IsCompleted() {
		return nil, errors.Errorf("опрос %s не завершен", assessmentID)
	}
	return rec, nil
}
