package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/ihealth/internal/backup"
	"github.com/2beens/ihealth/internal/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	upload := flag.Bool("upload", false, "upload the backup to google drive (also enabled by backup_drive_enabled)")
	recent := flag.Int("recent", 5, "number of recent backups to list")
	flag.Parse()

	cfg := cli.Setup(*env, *configPath, "ihealth-backup")

	target, err := backup.ParseTarget(os.Getenv(cli.DatabaseURLEnv))
	if err != nil {
		log.Fatalf("%s: %s", cli.DatabaseURLEnv, err)
	}

	ctx := context.Background()
	params := backup.ServiceParams{
		Target: *target,
		Dir:    cfg.BackupsDir,
		Runner: backup.ExecRunner{},
	}

	if *upload || cfg.BackupDriveEnabled {
		if cfg.BackupDriveCredFile == "" {
			log.Fatalln("google drive credentials json not specified, set backup_drive_cred_file")
		}
		uploader, err := backup.NewDriveUploaderFromFile(ctx, cfg.BackupDriveCredFile, cfg.BackupDriveFolder)
		if err != nil {
			log.Fatalf("failed to create google drive uploader: %s", err)
		}
		params.Uploader = uploader
	}

	s, err := backup.NewService(params)
	if err != nil {
		log.Fatalf("new backup service: %s", err)
	}

	log.Infoln("creating database backup ...")
	file, err := s.Backup(ctx, time.Now())
	if err != nil {
		log.Fatalf("backup failed: %s", err)
	}
	log.Infof("database backup created: %s (%.2f MB)", file.Path, file.SizeMB())

	files, err := s.ListBackups()
	if err != nil {
		log.Fatalf("list backups: %s", err)
	}
	log.Infoln("recent backups:")
	for i, f := range files {
		if i >= *recent {
			break
		}
		log.Infof("   %s", f)
	}
}
