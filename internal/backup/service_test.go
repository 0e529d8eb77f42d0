package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/2beens/ihealth/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type runCall struct {
	env  []string
	name string
	args []string
}

type fakeRunner struct {
	calls  []runCall
	failOn string
	// onRun is called for every command, e.g. to create the pg_dump output
	onRun func(name string, args []string) error
}

func (r *fakeRunner) Run(_ context.Context, env []string, name string, args ...string) error {
	r.calls = append(r.calls, runCall{env: env, name: name, args: args})
	if name == r.failOn {
		return errors.New("exit status 1")
	}
	if r.onRun != nil {
		return r.onRun(name, args)
	}
	return nil
}

func (r *fakeRunner) names() []string {
	var names []string
	for _, c := range r.calls {
		names = append(names, c.name)
	}
	return names
}

type fakeUploader struct {
	uploaded []string
	err      error
}

func (u *fakeUploader) Upload(_ context.Context, file BackupFile) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploaded = append(u.uploaded, file.Name)
	return "drive-id-1", nil
}

func testTarget() Target {
	return Target{
		Host:     "db.local",
		Port:     5433,
		User:     "ihealth",
		Password: "s3cret",
		Database: "ihealth",
	}
}

// writeDumpFile makes the fake pg_dump produce the file given with -f
func writeDumpFile(name string, args []string) error {
	if name != "pg_dump" {
		return nil
	}
	for i, a := range args {
		if a == "-f" && i+1 < len(args) {
			return os.WriteFile(args[i+1], []byte("-- dump\n"), 0o600)
		}
	}
	return errors.New("no -f arg")
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 3, 28, 14, 30, 5, 123_000_000, time.FixedZone("CET", 3600))
	assert.Equal(t, "ihealth-backup-2024-03-28T13-30-05-123Z.sql", FileName(now))
}

func TestService_Backup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	runner := &fakeRunner{onRun: writeDumpFile}
	uploader := &fakeUploader{}
	metricsManager := metrics.NewTestManager()

	s, err := NewService(ServiceParams{
		Target:         testTarget(),
		Dir:            dir,
		Runner:         runner,
		Uploader:       uploader,
		MetricsManager: metricsManager,
	})
	require.NoError(t, err)

	now := time.Date(2024, 3, 28, 14, 30, 0, 0, time.UTC)
	file, err := s.Backup(context.Background(), now)
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, "ihealth-backup-2024-03-28T14-30-00-000Z.sql", file.Name)
	assert.Equal(t, filepath.Join(dir, file.Name), file.Path)
	assert.Equal(t, int64(len("-- dump\n")), file.Size)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "pg_dump", call.name)
	assert.Equal(t, []string{"PGPASSWORD=s3cret"}, call.env)
	assert.Equal(t, []string{"-h", "db.local", "-p", "5433", "-U", "ihealth", "-d", "ihealth", "-f", file.Path}, call.args)

	assert.Equal(t, []string{file.Name}, uploader.uploaded)
	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistBackupDuration))
}

func TestService_Backup_Failures(t *testing.T) {
	now := time.Date(2024, 3, 28, 14, 30, 0, 0, time.UTC)

	t.Run("PgDumpFails", func(t *testing.T) {
		s, err := NewService(ServiceParams{
			Target: testTarget(),
			Dir:    t.TempDir(),
			Runner: &fakeRunner{failOn: "pg_dump"},
		})
		require.NoError(t, err)

		file, err := s.Backup(context.Background(), now)
		require.Error(t, err)
		assert.Nil(t, file)
		assert.Contains(t, err.Error(), "pg_dump")
	})

	t.Run("UploadFails", func(t *testing.T) {
		uploadErr := errors.New("quota exceeded")
		s, err := NewService(ServiceParams{
			Target:   testTarget(),
			Dir:      t.TempDir(),
			Runner:   &fakeRunner{onRun: writeDumpFile},
			Uploader: &fakeUploader{err: uploadErr},
		})
		require.NoError(t, err)

		file, err := s.Backup(context.Background(), now)
		assert.ErrorIs(t, err, uploadErr)
		// the local backup is still there
		require.NotNil(t, file)
		assert.FileExists(t, file.Path)
	})
}

func TestService_ListBackups(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"ihealth-backup-2024-03-01T10-00-00-000Z.sql",
		"ihealth-backup-2024-03-28T10-00-00-000Z.sql",
		"ihealth-backup-2024-03-15T10-00-00-000Z.sql",
		"notes.txt",
		"ihealth-backup-broken.sql.gz",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "ihealth-backup-dir.sql"), 0o700))

	s, err := NewService(ServiceParams{Dir: dir, Runner: &fakeRunner{}})
	require.NoError(t, err)

	files, err := s.ListBackups()
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "ihealth-backup-2024-03-28T10-00-00-000Z.sql", files[0].Name)
	assert.Equal(t, "ihealth-backup-2024-03-15T10-00-00-000Z.sql", files[1].Name)
	assert.Equal(t, "ihealth-backup-2024-03-01T10-00-00-000Z.sql", files[2].Name)
	assert.True(t, strings.HasPrefix(files[0].String(), files[0].Name))
}

func TestService_ListBackups_MissingDir(t *testing.T) {
	s, err := NewService(ServiceParams{Dir: filepath.Join(t.TempDir(), "nope"), Runner: &fakeRunner{}})
	require.NoError(t, err)

	_, err = s.ListBackups()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestService_Restore(t *testing.T) {
	runner := &fakeRunner{}
	s, err := NewService(ServiceParams{Target: testTarget(), Dir: t.TempDir(), Runner: runner})
	require.NoError(t, err)

	file := BackupFile{Name: "ihealth-backup-x.sql", Path: "/backups/ihealth-backup-x.sql"}
	require.NoError(t, s.Restore(context.Background(), file))

	require.Equal(t, []string{"dropdb", "createdb", "psql"}, runner.names())
	conn := []string{"-h", "db.local", "-p", "5433", "-U", "ihealth"}
	assert.Equal(t, append(conn, "ihealth", "--if-exists"), runner.calls[0].args)
	assert.Equal(t, append(conn, "ihealth"), runner.calls[1].args)
	assert.Equal(t, append(conn, "-d", "ihealth", "-f", file.Path), runner.calls[2].args)
	for _, c := range runner.calls {
		assert.Equal(t, []string{"PGPASSWORD=s3cret"}, c.env)
	}
}

func TestService_Restore_StopsAtFirstFailure(t *testing.T) {
	runner := &fakeRunner{failOn: "createdb"}
	s, err := NewService(ServiceParams{Target: testTarget(), Dir: t.TempDir(), Runner: runner})
	require.NoError(t, err)

	err = s.Restore(context.Background(), BackupFile{Name: "b.sql", Path: "/b.sql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "createdb")
	assert.Equal(t, []string{"dropdb", "createdb"}, runner.names())
}

func TestSelectBackup(t *testing.T) {
	files := []BackupFile{{Name: "c"}, {Name: "b"}, {Name: "a"}}

	testCases := []struct {
		input    string
		expected string
		err      error
	}{
		{input: "", expected: "c"},
		{input: "  ", expected: "c"},
		{input: "1", expected: "c"},
		{input: "3", expected: "a"},
		{input: " 2\n", expected: "b"},
		{input: "0", err: ErrInvalidSelection},
		{input: "4", err: ErrInvalidSelection},
		{input: "-1", err: ErrInvalidSelection},
		{input: "latest", err: ErrInvalidSelection},
	}

	for _, tc := range testCases {
		selected, err := SelectBackup(files, tc.input)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, selected.Name, "input %q", tc.input)
	}

	_, err := SelectBackup(nil, "")
	assert.ErrorIs(t, err, ErrNoBackups)
}

func TestNewService_RequiresDir(t *testing.T) {
	_, err := NewService(ServiceParams{})
	assert.Error(t, err)
}
