package bootstrap

import (
	"context"

	"stagepass/internal/infra/redisx"
	"stagepass/internal/pkg/config"
	"stagepass/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		redisx.NewLoginLimiter,
		fx.Annotate(
			redisx.NewScanDeduper,
			fx.As(new(commands.ScanDeduper)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := redisx.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
