package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/ihealth/internal"
	"github.com/2beens/ihealth/internal/cli"
	"github.com/2beens/ihealth/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg := cli.Setup(*env, *configPath, "ihealth-service")

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	apiSecret := os.Getenv("IHEALTH_API_SECRET")
	if apiSecret == "" {
		log.Fatalln("api secret not set. use IHEALTH_API_SECRET")
	}

	redisPassword := os.Getenv("IHEALTH_REDIS_PASS")
	if redisPassword == "" {
		log.Warnln("redis password not set. use IHEALTH_REDIS_PASS")
	}

	honeycombEnabled := tracing.Enabled()
	if honeycombEnabled {
		if os.Getenv("HONEYCOMB_API_KEY") == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
		if os.Getenv("OTEL_SERVICE_NAME") == "" {
			log.Warnln("OTEL_SERVICE_NAME env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	dbParams := cli.DBPoolParams(cfg)
	server, err := internal.NewServer(
		context.Background(),
		internal.NewServerParams{
			Config:                  cfg,
			DatabaseURL:             dbParams.DatabaseURL,
			RedisPassword:           redisPassword,
			APISecret:               apiSecret,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)

	server.GracefulShutdown()
}
