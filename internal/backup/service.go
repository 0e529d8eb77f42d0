package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/ihealth/internal/telemetry/metrics"
	"github.com/2beens/ihealth/internal/telemetry/tracing"
	"github.com/2beens/ihealth/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	filePrefix = "ihealth-backup-"
	fileSuffix = ".sql"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoBackups        = errors.New("no backup files found")
)

type BackupFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

func (f BackupFile) SizeMB() float64 {
	return float64(f.Size) / 1024 / 1024
}

func (f BackupFile) String() string {
	return fmt.Sprintf("%s (%.2f MB, %s)", f.Name, f.SizeMB(), f.ModTime.Format(time.DateTime))
}

// Uploader ships a finished backup somewhere off the machine.
type Uploader interface {
	Upload(ctx context.Context, file BackupFile) (string, error)
}

type ServiceParams struct {
	Target Target
	Dir    string
	Runner CommandRunner
	// optional
	Uploader       Uploader
	MetricsManager *metrics.Manager
}

type Service struct {
	target         Target
	dir            string
	runner         CommandRunner
	uploader       Uploader
	metricsManager *metrics.Manager
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Dir == "" {
		return nil, errors.New("backups dir is empty")
	}
	if params.Runner == nil {
		params.Runner = ExecRunner{}
	}
	return &Service{
		target:         params.Target,
		dir:            params.Dir,
		runner:         params.Runner,
		uploader:       params.Uploader,
		metricsManager: params.MetricsManager,
	}, nil
}

// FileName returns the backup file name for the given moment, e.g.
// ihealth-backup-2024-03-28T14-30-00-000Z.sql
func FileName(now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return filePrefix + ts + fileSuffix
}

func (s *Service) Backup(ctx context.Context, now time.Time) (_ *BackupFile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.service.backup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	begin := time.Now()
	if err := pkg.EnsureDir(s.dir); err != nil {
		return nil, fmt.Errorf("ensure backups dir: %w", err)
	}

	path := filepath.Join(s.dir, FileName(now))
	span.SetAttributes(attribute.String("file", path))
	log.Printf("creating database backup: %s", path)

	args := append(s.target.connArgs(), "-d", s.target.Database, "-f", path)
	if err := s.runner.Run(ctx, s.target.env(), "pg_dump", args...); err != nil {
		return nil, fmt.Errorf("pg_dump: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat backup file: %w", err)
	}
	file := &BackupFile{
		Name:    info.Name(),
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}

	if s.uploader != nil {
		id, err := s.uploader.Upload(ctx, *file)
		if err != nil {
			return file, fmt.Errorf("upload %s: %w", file.Name, err)
		}
		log.Printf("backup %s uploaded: %s", file.Name, id)
	}

	if s.metricsManager != nil {
		s.metricsManager.HistBackupDuration.Observe(time.Since(begin).Seconds())
	}

	return file, nil
}

// ListBackups returns the backup files in the backups dir, newest first.
func (s *Service) ListBackups() ([]BackupFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read backups dir: %w", err)
	}

	var files []BackupFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		files = append(files, BackupFile{
			Name:    name,
			Path:    filepath.Join(s.dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	// names embed a sortable UTC timestamp
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name > files[j].Name
	})

	return files, nil
}

// Restore replaces the target database with the contents of file.
// dropdb, createdb and psql run in that order; the first failure stops the restore.
func (s *Service) Restore(ctx context.Context, file BackupFile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.service.restore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("file", file.Path))

	env := s.target.env()

	log.Println("dropping existing database ...")
	dropArgs := append(s.target.connArgs(), s.target.Database, "--if-exists")
	if err := s.runner.Run(ctx, env, "dropdb", dropArgs...); err != nil {
		return fmt.Errorf("dropdb: %w", err)
	}

	log.Println("creating new database ...")
	createArgs := append(s.target.connArgs(), s.target.Database)
	if err := s.runner.Run(ctx, env, "createdb", createArgs...); err != nil {
		return fmt.Errorf("createdb: %w", err)
	}

	log.Printf("restoring data from %s ...", file.Name)
	psqlArgs := append(s.target.connArgs(), "-d", s.target.Database, "-f", file.Path)
	if err := s.runner.Run(ctx, env, "psql", psqlArgs...); err != nil {
		return fmt.Errorf("psql: %w", err)
	}

	return nil
}

// SelectBackup picks a file from a newest-first list: empty input means the
// latest, "N" the N-th (1-based).
func SelectBackup(files []BackupFile, input string) (BackupFile, error) {
	if len(files) == 0 {
		return BackupFile{}, ErrNoBackups
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return files[0], nil
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(files) {
		return BackupFile{}, fmt.Errorf("%w: %q", ErrInvalidSelection, input)
	}
	return files[n-1], nil
}
