package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/ihealth/internal/chat"
	"github.com/2beens/ihealth/internal/db"
	"github.com/2beens/ihealth/internal/records"
	"github.com/2beens/ihealth/internal/telemetry/metrics"
	"github.com/2beens/ihealth/internal/users"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

type DatabaseParams struct {
	Generator *Generator
	Today     time.Time
	// Reset deletes all existing rows first, in the same transaction.
	Reset          bool
	MetricsManager *metrics.Manager
}

// SeedDatabase runs the Seeder in a single transaction, so a failed run
// leaves the database as it was. Seeded record metrics are published after commit.
func SeedDatabase(ctx context.Context, conn db.TxBeginner, params DatabaseParams) (*Summary, error) {
	var summary *Summary
	err := db.InTx(ctx, conn, func(tx pgx.Tx) error {
		if params.Reset {
			if _, err := db.ResetAll(ctx, tx); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			log.Infoln("existing data deleted")
		}

		seeder, err := NewSeeder(SeederParams{
			Users:          users.NewRepo(tx),
			Records:        records.NewRepo(tx),
			Chat:           chat.NewRepo(tx),
			Generator: params.Generator,
		})
		if err != nil {
			return err
		}

		summary, err = seeder.Run(ctx, params.Today)
		return err
	})
	if err != nil {
		return nil, err
	}

	summary.PublishMetrics(params.MetricsManager)
	return summary, nil
}
