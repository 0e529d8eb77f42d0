// Package envcheck validates a dotenv file against the variables the
// application expects.
package envcheck

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/2beens/ihealth/pkg"

	"github.com/joho/godotenv"
)

var (
	ErrEnvFileMissing     = errors.New("env file not found")
	ErrExampleFileMissing = errors.New("example env file not found")
)

type Variable struct {
	Name        string
	Required    bool
	Description string
}

var Variables = []Variable{
	{Name: "DATABASE_URL", Required: true, Description: "PostgreSQL database connection string"},
	{Name: "NEXTAUTH_URL", Required: true, Description: "NextAuth.js URL (http://localhost:3000 for development)"},
	{Name: "NEXTAUTH_SECRET", Required: true, Description: "NextAuth.js secret key for JWT signing"},
	{Name: "OPENAI_API_KEY", Description: "OpenAI API key for AI chat features"},
	{Name: "OURA_CLIENT_ID", Description: "Oura Ring API client ID"},
	{Name: "OURA_CLIENT_SECRET", Description: "Oura Ring API client secret"},
	{Name: "EMAIL_SERVER_HOST", Description: "SMTP server host for email notifications"},
	{Name: "EMAIL_SERVER_USER", Description: "SMTP server username"},
	{Name: "EMAIL_SERVER_PASSWORD", Description: "SMTP server password"},
	{Name: "EMAIL_FROM", Description: "From email address for notifications"},
}

type Status struct {
	Variable
	Present bool
}

type Report struct {
	Statuses            []Status
	AllRequiredPresent  bool
	HasOptionalFeatures bool
}

func (r Report) Missing() []string {
	var missing []string
	for _, s := range r.Statuses {
		if s.Required && !s.Present {
			missing = append(missing, s.Name)
		}
	}
	return missing
}

// Check reads the dotenv file at path. A variable counts as present when it
// has a non-blank value.
func Check(path string) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrEnvFileMissing, path)
		}
		return nil, err
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return Evaluate(values), nil
}

func Evaluate(values map[string]string) *Report {
	report := &Report{AllRequiredPresent: true}
	for _, v := range Variables {
		present := strings.TrimSpace(values[v.Name]) != ""
		report.Statuses = append(report.Statuses, Status{Variable: v, Present: present})

		switch {
		case v.Required && !present:
			report.AllRequiredPresent = false
		case !v.Required && present:
			report.HasOptionalFeatures = true
		}
	}
	return report
}

// EnsureEnvFile copies examplePath to envPath when envPath does not exist yet.
// It reports whether the file was created. An existing env file is never touched.
func EnsureEnvFile(envPath, examplePath string) (bool, error) {
	exists, err := pkg.PathExists(envPath, false)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	exampleExists, err := pkg.PathExists(examplePath, false)
	if err != nil {
		return false, err
	}
	if !exampleExists {
		return false, fmt.Errorf("%w: %s", ErrExampleFileMissing, examplePath)
	}

	content, err := os.ReadFile(examplePath)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", examplePath, err)
	}
	// O_EXCL: never clobber a file created in the meantime
	f, err := os.OpenFile(envPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return false, fmt.Errorf("create %s: %w", envPath, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write %s: %w", envPath, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", envPath, err)
	}
	return true, nil
}
