package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashsight/simulator/internal/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadChartOfAccounts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "coa.csv",
		"acct_number,acct_name,acct_class,acct_type\n"+
			"11000,Cash,Asset,Current\n"+
			"41000,Rent Revenue,Revenue,Operating\n")

	accounts, err := LoadChartOfAccounts(path, logger.New("production"))
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "11000", accounts[0].Number)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.Equal(t, "Revenue", accounts[1].Class)
}

func TestLoadChartOfAccounts_MissingFileSkips(t *testing.T) {
	accounts, err := LoadChartOfAccounts(filepath.Join(t.TempDir(), "nope.csv"), logger.New("production"))
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestLoadProperties(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "properties.csv",
		"property_name,type,subtype,units,floors,total_sq_ft,occupancy,year_built\n"+
			"Harborview Plaza,Office,Class A Office,24,6,36000,0.85,1998\n"+
			"Gateway Logistics,Industrial,Warehouse/Distribution,8.0,1,96000.0,0.75,2004\n")

	properties, err := LoadProperties(path, logger.New("production"))
	require.NoError(t, err)
	require.Len(t, properties, 2)

	first := properties[0]
	assert.NotEmpty(t, first.ID, "missing property_id must be assigned at load")
	assert.Equal(t, "Harborview Plaza", first.Name)
	assert.Equal(t, 24, first.Units)
	assert.Equal(t, 0.85, first.OccupancyRate)

	// Float-formatted integer columns parse.
	second := properties[1]
	assert.Equal(t, 8, second.Units)
	assert.Equal(t, 96000, second.TotalSqFt)
}

func TestLoadProperties_KeepsProvidedID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "properties.csv",
		"property_id,property_name,type,units,occupancy\n"+
			"prop-42,Midtown Tower,Office,10,0.9\n")

	properties, err := LoadProperties(path, logger.New("production"))
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "prop-42", properties[0].ID)
	// Absent numeric columns fall back.
	assert.Equal(t, 1, properties[0].Floors)
	assert.Equal(t, 1980, properties[0].YearBuilt)
}

func TestLoadProperties_InvalidNumberFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "properties.csv",
		"property_name,units\nBad Rows Tower,many\n")

	_, err := LoadProperties(path, logger.New("production"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "units")
}

func TestLoadProperties_HeaderNormalized(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "properties.csv",
		" Property_Name , UNITS , Occupancy \nCivic Center,4,0.5\n")

	properties, err := LoadProperties(path, logger.New("production"))
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Civic Center", properties[0].Name)
	assert.Equal(t, 4, properties[0].Units)
}
