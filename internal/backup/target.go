package backup

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
)

// Target is the database the command line tools connect to.
type Target struct {
	Host     string
	Port     uint16
	User     string
	Password string
	Database string
}

// ParseTarget reads a postgres connection URL (or DSN). The port defaults to 5432.
func ParseTarget(databaseURL string) (*Target, error) {
	if databaseURL == "" {
		return nil, errors.New("database url is empty")
	}

	cfg, err := pgconn.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.Database == "" {
		return nil, errors.New("database url has no database name")
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	return &Target{
		Host:     cfg.Host,
		Port:     port,
		User:     cfg.User,
		Password: cfg.Password,
		Database: cfg.Database,
	}, nil
}

func (t Target) connArgs() []string {
	return []string{
		"-h", t.Host,
		"-p", strconv.Itoa(int(t.Port)),
		"-U", t.User,
	}
}

func (t Target) env() []string {
	return []string{"PGPASSWORD=" + t.Password}
}
