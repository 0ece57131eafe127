package initializers

import (
	"context"

	"fntp-backend/config"
	filestorage "fntp-backend/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.AccessKeyID == "" {
		log.Warn("S3 не настроен, загрузка документов недоступна")
		filestorage.NewHandler(nil, config.Conf.S3.BucketName)
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		filestorage.NewHandler(nil, config.Conf.S3.BucketName)
		return
	}
	filestorage.NewHandler(minioClient, config.Conf.S3.BucketName)
	err = filestorage.Instance.MakeBucket(ctx)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, ошибка проверки бакета")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
