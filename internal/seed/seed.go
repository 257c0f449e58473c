package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cashsight/simulator/internal/logger"
	"github.com/cashsight/simulator/internal/models"
)

// Seed files are optional inputs: a missing file is logged as a warning and
// yields an empty table, so a partial run can still proceed. A file that
// exists but cannot be parsed is a real error.

// LoadChartOfAccounts reads the chart-of-accounts CSV
// (acct_number, acct_name, acct_class, acct_type).
func LoadChartOfAccounts(path string, log *logger.Logger) ([]models.Account, error) {
	rows, ok, err := readCSV(path, log)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Account{}, nil
	}

	accounts := make([]models.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, models.Account{
			Number: row["acct_number"],
			Name:   row["acct_name"],
			Class:  row["acct_class"],
			Type:   row["acct_type"],
		})
	}
	return accounts, nil
}

// LoadProperties reads the property listing CSV. A property_id column is
// optional; ids are assigned at load when absent so downstream references
// stay stable within the run.
func LoadProperties(path string, log *logger.Logger) ([]models.Property, error) {
	rows, ok, err := readCSV(path, log)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Property{}, nil
	}

	properties := make([]models.Property, 0, len(rows))
	for i, row := range rows {
		id := row["property_id"]
		if id == "" {
			id = strings.ReplaceAll(uuid.NewString(), "-", "")
		}

		units, err := intField(row, "units", 0)
		if err != nil {
			return nil, fmt.Errorf("property row %d: %w", i+1, err)
		}
		floors, err := intField(row, "floors", 1)
		if err != nil {
			return nil, fmt.Errorf("property row %d: %w", i+1, err)
		}
		totalSqFt, err := intField(row, "total_sq_ft", 0)
		if err != nil {
			return nil, fmt.Errorf("property row %d: %w", i+1, err)
		}
		yearBuilt, err := intField(row, "year_built", 1980)
		if err != nil {
			return nil, fmt.Errorf("property row %d: %w", i+1, err)
		}
		occupancy, err := floatField(row, "occupancy", 0)
		if err != nil {
			return nil, fmt.Errorf("property row %d: %w", i+1, err)
		}

		properties = append(properties, models.Property{
			ID:            id,
			Name:          row["property_name"],
			Type:          row["type"],
			Subtype:       row["subtype"],
			Units:         units,
			Floors:        floors,
			TotalSqFt:     totalSqFt,
			OccupancyRate: occupancy,
			YearBuilt:     yearBuilt,
		})
	}
	return properties, nil
}

// readCSV reads a headered CSV into one map per data row. The second return
// is false when the file does not exist (the warn-and-skip path).
func readCSV(path string, log *logger.Logger) ([]map[string]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Seed file not found, skipping table", map[string]interface{}{
				"path": path,
			})
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, true, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, true, nil
}

func intField(row map[string]string, key string, fallback int) (int, error) {
	raw := row[key]
	if raw == "" {
		return fallback, nil
	}
	// Seed exports sometimes carry numeric columns as floats ("12.0").
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return int(v), nil
}

func floatField(row map[string]string, key string, fallback float64) (float64, error) {
	raw := row[key]
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return v, nil
}
