package initializers

import (
	"context"
	"time"

	"fntp-backend/config"
	"fntp-backend/fiberlog"
	"fntp-backend/lib/ai"
	"fntp-backend/lib/analysis"
	analysisworker "fntp-backend/lib/analysis/worker"
	"fntp-backend/lib/assessment"
	clienthandler "fntp-backend/lib/client"
	"fntp-backend/lib/document"
	"fntp-backend/lib/notify"
	connectionhub "fntp-backend/lib/ws/hub/connection-hub"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitRedis(ctx)
	connectionhub.Init()
	notify.NewHandler(config.Conf.Practice.PractitionerEmail)
	if err := ai.NewHandler(config.Conf.AI); err != nil {
		log.WithError(err).Warn("AI провайдер не инициализирован, анализ опросов и документов отключен")
	}
	clienthandler.NewHandler()
	err := assessment.NewHandler(assessment.Options{
		DefaultTemplate:           config.Conf.Assessment.Template,
		StrictSequencing:          *config.Conf.Assessment.StrictSequencing,
		AverageSecondsPerQuestion: config.Conf.Assessment.AverageSecondsPerQuestion,
	})
	if err != nil {
		panic(err.Error())
	}
	analysis.NewHandler(time.Duration(config.Conf.AI.ReanalyzeSec) * time.Second)
	if QueueClient != nil {
		document.NewHandler(QueueClient)
	} else {
		document.NewHandler(nil)
	}
	StartQueue()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	if ai.Instance == nil {
		return
	}
	// Анализ завершенных опросов
	analysisworker.StartWorker(ctx, time.Duration(config.Conf.Assessment.AnalysisIntervalSec)*time.Second)
}
