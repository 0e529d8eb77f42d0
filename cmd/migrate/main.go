package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/2beens/ihealth/internal/cli"
	"github.com/2beens/ihealth/internal/db"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	printSchema := flag.Bool("print", false, "print the schema instead of applying it")
	flag.Parse()

	if *printSchema {
		fmt.Print(db.Schema())
		return
	}

	cfg := cli.Setup(*env, *configPath, "ihealth-migrate")

	ctx := context.Background()
	pool, err := db.NewDBPool(ctx, cli.DBPoolParams(cfg))
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer pool.Close()

	log.Infoln("running database migrations ...")
	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("migration failed: %s", err)
	}
	log.Infoln("migration completed successfully")
}
