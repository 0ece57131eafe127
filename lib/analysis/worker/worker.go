package analysisworker

import (
	"context"
	"time"

	"fntp-backend/db"
	"fntp-backend/lib/analysis"
	assessmentstore "fntp-backend/lib/assessment/store"
	baseworker "fntp-backend/lib/utils/base-worker"
	"fntp-backend/lib/utils/helpers"
)

// анализ завершенных опросов
func StartWorker(ctx context.Context, interval time.Duration) {
	i := &impl{
		BaseImpl:        *baseworker.NewInstance("AssessmentAnalysisWorker", 10*time.Second, interval),
		assessmentStore: assessmentstore.NewInstance(db.DB),
		analysis:        analysis.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	assessmentStore assessmentstore.Provider
	analysis        analysis.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.assessmentStore.GetForAnalysis()
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка опросов для анализа")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		err = i.analysis.Analyze(ctx, rec.ID)
		if err != nil {
			logger.WithError(err).
				WithField("assessment_id", rec.ID).
				Error("ошибка анализа опроса")
			continue
		}
	}
}
