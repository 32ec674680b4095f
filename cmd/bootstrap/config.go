package bootstrap

import (
	"os"

	"stagepass/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

func LoadConfig() (config.Config, error) {
	// Missing .env is fine in containerized deployments
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return config.Config{}, err
		}
	}
	return config.LoadConfig()
}
