package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr   string `default:"" env:"APP_HOST"`
		Port         int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMB  int    `default:"50" env:"APP_BODY_LIMIT_MB"`
		ErrNotifyUrl string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"fntp" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"fntp-documents" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Redis struct {
		Addr     string `default:"" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
		// параллельность обработчиков очереди asynq
		QueueConcurrency int `default:"5" env:"REDIS_QUEUE_CONCURRENCY"`
	}
	AI AI
	Assessment struct {
		Template                  string `default:"full" env:"ASSESSMENT_TEMPLATE"` // full | essential
		AverageSecondsPerQuestion int    `default:"30" env:"ASSESSMENT_AVG_SECONDS_PER_QUESTION"`
		StrictSequencing          *bool  `default:"false" env:"ASSESSMENT_STRICT_SEQUENCING"`
		AnalysisIntervalSec       int    `default:"60" env:"ASSESSMENT_ANALYSIS_INTERVAL_SEC"`
	}
	Practice struct {
		Name              string `default:"Nutrition Practice" env:"PRACTICE_NAME"`
		PractitionerEmail string `default:"" env:"PRACTITIONER_EMAIL"`
	}
}

type AI struct {
	Provider        string `default:"openai" env:"AI_PROVIDER"` // openai | yandexgpt
	OpenAIKey       string `default:"" env:"OPENAI_API_KEY"`
	OpenAIModel     string `default:"gpt-3.5-turbo-1106" env:"OPENAI_MODEL"`
	YandexIAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
	YandexCatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	ReanalyzeSec    int    `default:"300" env:"AI_REANALYZE_INTERVAL_SEC"`
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
