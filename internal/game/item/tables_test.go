package item_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
)

func writeTables(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return dir
}

func validTableFiles() map[string]string {
	return map[string]string{
		item.IotumFile: `
- {min_roll: 1, max_roll: 99, name: Io, level: 1, units_salvaged: "1d6", value: 1}
- {min_roll: 100, max_roll: 100, name: Plan seed, value: 2}
`,
		item.OdditiesFile: `
- description: A feather that falls upward.
  source: Numenera Discovery
  page: 12
`,
		item.CyphersFile:   `- {name: Stim, level: "1d6"}`,
		item.ArtifactsFile: `- {name: Hover belt, level: "1d6 + 3"}`,
	}
}

func TestLoadTables(t *testing.T) {
	dir := writeTables(t, validTableFiles())

	tables, err := item.LoadTables(dir)
	require.NoError(t, err)

	require.Len(t, tables.Iotum, 2)
	assert.Equal(t, item.IotumRow{MinRoll: 100, MaxRoll: 100, Name: item.PlanSeed, Value: 2}, tables.Iotum[1])
	assert.Equal(t, item.OddityRow{Description: "A feather that falls upward.", Source: "Numenera Discovery", Page: 12}, tables.Oddities[0])
	assert.Equal(t, "1d6", tables.Cyphers[0].Level)
	assert.Equal(t, "Hover belt", tables.Artifacts[0].Name)
}

func TestLoadTables_MissingFile(t *testing.T) {
	files := validTableFiles()
	delete(files, item.CyphersFile)
	_, err := item.LoadTables(writeTables(t, files))
	assert.Error(t, err)
}

func TestLoadTables_BadYAML(t *testing.T) {
	files := validTableFiles()
	files[item.ArtifactsFile] = "- {name: [unterminated"
	_, err := item.LoadTables(writeTables(t, files))
	assert.ErrorIs(t, err, fault.ErrDataFormat)
}

func TestLoadTables_BracketGap(t *testing.T) {
	files := validTableFiles()
	files[item.IotumFile] = `
- {min_roll: 1, max_roll: 50, name: Io, level: 1, units_salvaged: "1d6", value: 1}
- {min_roll: 52, max_roll: 100, name: Apt clay, level: 3, units_salvaged: "1d6", value: 3}
`
	_, err := item.LoadTables(writeTables(t, files))
	assert.ErrorIs(t, err, fault.ErrDataFormat)
}

func TestTables_Validate_Overlap(t *testing.T) {
	tables := sampleTables()
	tables.Iotum[1].MinRoll = 50
	assert.ErrorIs(t, tables.Validate(), fault.ErrDataFormat)
}

func TestTables_Validate_ShortOfHundred(t *testing.T) {
	tables := sampleTables()
	tables.Iotum = tables.Iotum[:2]
	assert.ErrorIs(t, tables.Validate(), fault.ErrDataFormat)
}

func TestTables_Validate_EmptyTable(t *testing.T) {
	tables := sampleTables()
	tables.Artifacts = nil
	assert.ErrorIs(t, tables.Validate(), fault.ErrDataFormat)
}

func TestTables_Validate_Sample(t *testing.T) {
	assert.NoError(t, sampleTables().Validate())
}

// TestLoadTables_BundledContent keeps the shipped tables loadable.
func TestLoadTables_BundledContent(t *testing.T) {
	tables, err := item.LoadTables(filepath.Join("..", "..", "..", "content", "tables"))
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Iotum)
	assert.NotEmpty(t, tables.Oddities)
	assert.NotEmpty(t, tables.Cyphers)
	assert.NotEmpty(t, tables.Artifacts)
}
