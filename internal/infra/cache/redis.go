// Package cache provides the Redis client used by the catalog response cache.
package cache

import (
	"context"
	"log/slog"

	"tourdesk/config"
	"tourdesk/internal/domain/lifecycle"
	"tourdesk/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client. When no redis section is configured the
// client is nil and the cache middleware degrades to a pass-through.
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		params.Logger.Info("Redis not configured, response cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.Wrap(client.Close(), "failed to close Redis")
		},
	})

	return client, nil
}
