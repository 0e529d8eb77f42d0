package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schemaSQL string

// Execer is the subset of a pgx connection needed to run plain statements.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Schema returns the embedded DDL.
func Schema() string {
	return schemaSQL
}

// Migrate creates all tables and indexes. Safe to run repeatedly.
func Migrate(ctx context.Context, conn Execer) error {
	if _, err := conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Infoln("schema applied")
	return nil
}

// resetOrder lists tables children first, so deletes never violate a foreign key.
var resetOrder = []string{
	"chat_message",
	"chat_conversation",
	"activity_data",
	"sleep_data",
	"workout",
	"health_record",
	"users",
}

// ResetAll deletes every row of every table, in dependency order.
// It returns the number of deleted rows per table.
func ResetAll(ctx context.Context, conn Execer) (map[string]int64, error) {
	deleted := make(map[string]int64, len(resetOrder))
	for _, table := range resetOrder {
		tag, err := conn.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			return deleted, fmt.Errorf("delete from %s: %w", table, err)
		}
		deleted[table] = tag.RowsAffected()
		log.Debugf("deleted %d rows from %s", tag.RowsAffected(), table)
	}
	return deleted, nil
}

// ResetOrder returns the table names in the order ResetAll clears them.
func ResetOrder() []string {
	return append([]string(nil), resetOrder...)
}
