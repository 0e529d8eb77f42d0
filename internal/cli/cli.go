// Package cli holds the start-up steps shared by the commands under cmd/.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/2beens/ihealth/internal/config"
	"github.com/2beens/ihealth/internal/db"
	"github.com/2beens/ihealth/internal/logging"
	"github.com/2beens/ihealth/internal/seed"
	"github.com/2beens/ihealth/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const DatabaseURLEnv = "DATABASE_URL"

// Setup loads the config section for env and configures logging for the command.
func Setup(env, configPath, serverName string) *config.Config {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: serverName,
	})

	log.Debugf("---->> running in [%s] environment", cfg.Environment)
	return cfg
}

// DBPoolParams prefers DATABASE_URL over the postgres settings from the config.
func DBPoolParams(cfg *config.Config) db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DatabaseURL:    os.Getenv(DatabaseURLEnv),
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDB,
		TracingEnabled: tracing.Enabled(),
	}
}

// SeedGenerator builds the demo data generator from the seed_* config values.
// days > 0 overrides seed_days. randSeed < 0 uses seed_random_seed, and a resulting 0
// means a time based seed. The returned location is the one the generator's days live in.
func SeedGenerator(cfg *config.Config, days int, randSeed int64) (*seed.Generator, *time.Location, error) {
	genCfg := seed.DefaultGeneratorConfig()
	genCfg.Days = cfg.SeedDays
	if days > 0 {
		genCfg.Days = days
	}
	genCfg.WorkoutProbability = cfg.SeedWorkoutProbability

	loc, err := time.LoadLocation(cfg.SeedTimeZone)
	if err != nil {
		return nil, nil, fmt.Errorf("load seed time zone %s: %w", cfg.SeedTimeZone, err)
	}
	genCfg.Location = loc

	rs := cfg.SeedRandomSeed
	if randSeed >= 0 {
		rs = randSeed
	}
	if rs == 0 {
		rs = time.Now().UnixNano()
	}
	log.Debugf("using random seed: %d", rs)

	generator, err := seed.NewGenerator(genCfg, seed.NewRand(rs))
	if err != nil {
		return nil, nil, fmt.Errorf("new generator: %w", err)
	}
	return generator, loc, nil
}
