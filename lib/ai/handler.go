package ai

import (
	"context"

	"fntp-backend/config"
	openaiclient "fntp-backend/lib/ai/openai-client"
	yagptclient "fntp-backend/lib/ai/yagpt-client"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ProviderOpenAI    = "openai"
	ProviderYandexGPT = "yandexgpt"
)

type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() string
	Model() string
}

var Instance Provider

func NewHandler(cfg config.AI) error {
	provider, err := New(cfg)
	if err != nil {
		return err
	}
	Instance = provider
	log.
		WithField("provider", provider.Name()).
		WithField("model", provider.Model()).
		Info("AI провайдер инициализирован")
	return nil
}

func New(cfg config.AI) (Provider, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		if cfg.OpenAIKey == "" {
			return nil, errors.New("не задан ключ OpenAI")
		}
		return openaiclient.NewClient(cfg.OpenAIKey, cfg.OpenAIModel), nil
	case ProviderYandexGPT:
		if cfg.YandexIAMToken == "" || cfg.YandexCatalogID == "" {
			return nil, errors.New("не заданы параметры YandexGPT")
		}
		return yagptclient.NewClient(cfg.YandexIAMToken, cfg.YandexCatalogID), nil
	default:
		return nil, errors.Errorf("неизвестный AI провайдер %q", cfg.Provider)
	}
}
