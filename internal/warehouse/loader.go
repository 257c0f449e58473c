// Package warehouse loads generated CSV tables into PostgreSQL for the
// read API and downstream analytics.
package warehouse

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cashsight/simulator/internal/database"
	"github.com/cashsight/simulator/internal/logger"
)

// Loader replaces warehouse tables from CSV files. Every column is loaded
// as text; typing is left to downstream views.
type Loader struct {
	db  *database.Database
	log *logger.Logger
}

// NewLoader creates a Loader over an open database pool.
func NewLoader(db *database.Database, log *logger.Logger) *Loader {
	return &Loader{db: db, log: log}
}

// LoadDir loads every named table from dir, replacing each warehouse table
// wholesale. A missing CSV fails the load.
func (l *Loader) LoadDir(ctx context.Context, dir string, tables []string) error {
	for _, table := range tables {
		path := filepath.Join(dir, table+".csv")
		n, err := l.loadTable(ctx, table, path)
		if err != nil {
			return fmt.Errorf("load table %s: %w", table, err)
		}
		l.log.Info("table loaded", map[string]interface{}{
			"table": table,
			"rows":  n,
		})
	}
	return nil
}

func (l *Loader) loadTable(ctx context.Context, table, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("%s: missing header row", path)
	}
	header := records[0]
	if err := validateIdentifiers(table, header); err != nil {
		return 0, err
	}

	tx, err := l.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %q`, table)); err != nil {
		return 0, fmt.Errorf("drop: %w", err)
	}

	cols := make([]string, len(header))
	for i, col := range header {
		cols[i] = fmt.Sprintf("%q TEXT", col)
	}
	createSQL := fmt.Sprintf(`CREATE TABLE %q (%s)`, table, strings.Join(cols, ", "))
	if _, err := tx.Exec(ctx, createSQL); err != nil {
		return 0, fmt.Errorf("create: %w", err)
	}

	rows := make([][]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]interface{}, len(header))
		for i := range header {
			if i < len(record) {
				row[i] = record[i]
			} else {
				row[i] = ""
			}
		}
		rows = append(rows, row)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table}, header, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return copied, nil
}

// validateIdentifiers rejects table or column names that cannot be safely
// quoted into DDL. Generated headers are static, so this only trips on a
// hand-edited CSV.
func validateIdentifiers(table string, header []string) error {
	for _, name := range append([]string{table}, header...) {
		if name == "" || strings.ContainsAny(name, `"`+"\x00") {
			return fmt.Errorf("invalid identifier %q", name)
		}
	}
	return nil
}
