package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/2beens/ihealth/internal/cli"
	"github.com/2beens/ihealth/internal/config"
	"github.com/2beens/ihealth/internal/db"
	"github.com/2beens/ihealth/internal/envcheck"
	"github.com/2beens/ihealth/internal/records"
	"github.com/2beens/ihealth/internal/seed"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envPath := flag.String("file", ".env.local", "local env file")
	examplePath := flag.String("example", ".env.local.example", "example env file copied when the local one is missing")
	flag.Parse()

	cfg := cli.Setup(*env, *configPath, "ihealth-dev-setup")
	log.Infoln("setting up development environment ...")

	created, err := envcheck.EnsureEnvFile(*envPath, *examplePath)
	switch {
	case errors.Is(err, envcheck.ErrExampleFileMissing):
		log.Warnf("%s not found, create %s manually", *examplePath, *envPath)
	case err != nil:
		log.Fatalf("prepare %s: %s", *envPath, err)
	case created:
		log.Infof("%s created from %s, update it with your actual values", *envPath, *examplePath)
	}

	// values already in the environment win over the file
	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load %s: %s", *envPath, err)
	}

	seeded := setupDatabase(cfg)

	fmt.Println("\ndevelopment setup completed!")
	fmt.Println("\nnext steps:")
	fmt.Printf("1. update %s with your database URL and other secrets\n", *envPath)
	fmt.Println("2. run: go run ./cmd/service")
	fmt.Printf("3. open: http://%s:%d/healthz\n", cfg.Host, cfg.Port)
	if seeded {
		fmt.Println("\ndemo login:")
		fmt.Printf("email: %s\n", seed.DemoEmail)
		fmt.Printf("password: %s\n", seed.DemoPassword)
	}
}

// setupDatabase applies the schema and seeds demo data. A database that cannot be
// reached only skips this step. It reports whether demo data is in place.
func setupDatabase(cfg *config.Config) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := db.NewDBPool(ctx, cli.DBPoolParams(cfg))
	if err != nil {
		log.Warnf("database setup skipped, new db pool: %s", err)
		return false
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Warnf("database setup skipped, ping: %s", err)
		return false
	}

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("apply schema: %s", err)
	}
	log.Infoln("database schema applied")

	generator, loc, err := cli.SeedGenerator(cfg, 0, -1)
	if err != nil {
		log.Fatalf("%s", err)
	}
	summary, err := seed.SeedDatabase(ctx, pool, seed.DatabaseParams{
		Generator: generator,
		Today:     time.Now().In(loc),
	})
	if errors.Is(err, records.ErrRecordExists) {
		log.Infoln("database already seeded, run the seed command with -reset to start over")
		return true
	}
	if err != nil {
		log.Fatalf("seed failed: %s", err)
	}
	log.Infof("database seeded for user %s", summary.UserID)
	return true
}
