package main

import (
	"context"
	"flag"

	"github.com/2beens/ihealth/internal/cli"
	"github.com/2beens/ihealth/internal/db"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg := cli.Setup(*env, *configPath, "ihealth-reset-db")

	ctx := context.Background()
	pool, err := db.NewDBPool(ctx, cli.DBPoolParams(cfg))
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer pool.Close()

	log.Warnln("resetting database ...")
	var deleted map[string]int64
	err = db.InTx(ctx, pool, func(tx pgx.Tx) error {
		var err error
		deleted, err = db.ResetAll(ctx, tx)
		return err
	})
	if err != nil {
		log.Fatalf("reset failed: %s", err)
	}

	for _, table := range db.ResetOrder() {
		log.Infof("deleted %d rows from %s", deleted[table], table)
	}
	log.Infoln("database reset completed")
}
