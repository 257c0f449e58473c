package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteMode controls whether a table file is replaced or extended.
type WriteMode int

const (
	// ModeReplace truncates the table file and writes a fresh header.
	ModeReplace WriteMode = iota
	// ModeAppend adds rows to an existing file, writing the header only
	// when the file does not exist yet.
	ModeAppend
)

func tablePath(dir, table string) string {
	return filepath.Join(dir, table+".csv")
}

func writeTable(dir, table string, header []string, rows [][]string, mode WriteMode) error {
	path := tablePath(dir, table)

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	writeHeader := true
	if mode == ModeAppend {
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			flags = os.O_APPEND | os.O_WRONLY
			writeHeader = false
		}
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header for %s: %w", table, err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows for %s: %w", table, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", table, err)
	}
	return f.Close()
}

// readTable reads a previously written table file and returns one
// column-name keyed map per row.
func readTable(dir, table string) ([]map[string]string, error) {
	path := tablePath(dir, table)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
