package throttle

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "fntp:throttle:"

// Provider lets an action through at most once per window for a key.
type Provider interface {
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
}

var Instance Provider

func NewHandler(client *redis.Client) {
	Instance = New(client)
}

func New(client *redis.Client) Provider {
	return impl{
		client: client,
	}
}

type impl struct {
	client *redis.Client
}

func (i impl) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	if i.client == nil {
		log.WithField("key", key).Debug("redis не настроен, ограничение частоты отключено")
		return true, nil
	}
	ok, err := i.client.SetNX(ctx, keyPrefix+key, time.Now().Unix(), window).Result()
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки ограничения частоты в redis")
	}
	return ok, nil
}
