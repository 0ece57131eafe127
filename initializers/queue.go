package initializers

import (
	"context"

	"fntp-backend/config"
	"fntp-backend/lib/document"
	"fntp-backend/lib/utils/throttle"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var (
	QueueClient *asynq.Client
	QueueServer *asynq.Server
)

// InitRedis поднимает троттлинг повторного анализа и очередь задач анализа документов.
// Без REDIS_ADDR троттлинг пропускает все запросы, а очередь не запускается.
func InitRedis(ctx context.Context) {
	if config.Conf.Redis.Addr == "" {
		log.Warn("Redis не настроен, очередь задач и троттлинг отключены")
		throttle.NewHandler(nil)
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Error("Ошибка подключения к Redis")
	}
	throttle.NewHandler(client)

	redisOpt := asynq.RedisClientOpt{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	}
	QueueClient = asynq.NewClient(redisOpt)
	QueueServer = asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: config.Conf.Redis.QueueConcurrency,
		Logger:      log.StandardLogger(),
	})
	log.Info("Redis и очередь задач успешно инициализированы")
}

// StartQueue запускает обработчики очереди, вызывается после инициализации document.Instance
func StartQueue() {
	if QueueServer == nil {
		return
	}
	mux := asynq.NewServeMux()
	document.RegisterHandlers(mux)
	if err := QueueServer.Start(mux); err != nil {
		log.WithError(err).Error("Ошибка запуска обработчиков очереди")
	}
}

func StopQueue() {
	if QueueServer != nil {
		QueueServer.Shutdown()
	}
	if QueueClient != nil {
		if err := QueueClient.Close(); err != nil {
			log.WithError(err).Warn("Ошибка закрытия клиента очереди")
		}
	}
}
