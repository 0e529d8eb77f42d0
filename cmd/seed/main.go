package main

import (
	"context"
	"flag"
	"time"
	_ "time/tzdata"

	"github.com/2beens/ihealth/internal/cli"
	"github.com/2beens/ihealth/internal/db"
	"github.com/2beens/ihealth/internal/seed"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	reset := flag.Bool("reset", false, "delete all existing data before seeding")
	days := flag.Int("days", 0, "number of days to generate (0 uses the config value)")
	randSeed := flag.Int64("seed", -1, "random seed (-1 uses the config value, 0 a time based one)")
	flag.Parse()

	cfg := cli.Setup(*env, *configPath, "ihealth-seed")

	generator, loc, err := cli.SeedGenerator(cfg, *days, *randSeed)
	if err != nil {
		log.Fatalf("%s", err)
	}

	ctx := context.Background()
	pool, err := db.NewDBPool(ctx, cli.DBPoolParams(cfg))
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer pool.Close()

	if *reset {
		log.Warnln("!! attention: all existing data will be deleted")
	}

	summary, err := seed.SeedDatabase(ctx, pool, seed.DatabaseParams{
		Generator: generator,
		Today:     time.Now().In(loc),
		Reset:     *reset,
	})
	if err != nil {
		log.Fatalf("seed failed: %s", err)
	}

	log.Infof(
		"seeded user %s: %d health, %d workouts, %d sleep, %d activity records, %d conversation(s)",
		summary.UserID, summary.HealthRecords, summary.Workouts, summary.SleepRecords,
		summary.ActivityRecords, summary.Conversations,
	)
	log.Infof("demo login: %s / %s", seed.DemoEmail, seed.DemoPassword)
}
