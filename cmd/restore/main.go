package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/2beens/ihealth/internal/backup"
	"github.com/2beens/ihealth/internal/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg := cli.Setup(*env, *configPath, "ihealth-restore")

	target, err := backup.ParseTarget(os.Getenv(cli.DatabaseURLEnv))
	if err != nil {
		log.Fatalf("%s: %s", cli.DatabaseURLEnv, err)
	}

	s, err := backup.NewService(backup.ServiceParams{
		Target: *target,
		Dir:    cfg.BackupsDir,
		Runner: backup.ExecRunner{},
	})
	if err != nil {
		log.Fatalf("new backup service: %s", err)
	}

	files, err := s.ListBackups()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Fatalln("backups directory not found, run the backup command first")
		}
		log.Fatalf("list backups: %s", err)
	}
	if len(files) == 0 {
		log.Fatalln("no backup files found in backups directory")
	}

	fmt.Println("available backups:")
	for i, f := range files {
		fmt.Printf("   %d. %s\n", i+1, f)
	}

	in := bufio.NewReader(os.Stdin)

	selection := ask(in, "\nenter backup number to restore (or press Enter for latest): ")
	selected, err := backup.SelectBackup(files, selection)
	if err != nil {
		log.Fatalf("%s", err)
	}

	confirm := ask(in, fmt.Sprintf("\nthis will replace all data in database %q. continue? (yes/no): ", target.Database))
	if strings.ToLower(strings.TrimSpace(confirm)) != "yes" {
		fmt.Println("restoration cancelled")
		return
	}

	log.Infof("restoring database from: %s", selected.Name)
	if err := s.Restore(context.Background(), selected); err != nil {
		log.Fatalf("restoration failed: %s", err)
	}
	log.Infoln("database restored successfully")
}

func ask(in *bufio.Reader, question string) string {
	fmt.Print(question)
	answer, err := in.ReadString('\n')
	if err != nil && answer == "" {
		return ""
	}
	return strings.TrimSpace(answer)
}
