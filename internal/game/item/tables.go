package item

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/numenera/internal/game/fault"
)

// Table file names expected inside a tables directory.
const (
	IotumFile     = "iotum.yaml"
	OdditiesFile  = "oddities.yaml"
	CyphersFile   = "cyphers.yaml"
	ArtifactsFile = "artifacts.yaml"
)

// Tables is the full content of the four salvage tables.
type Tables struct {
	Iotum     []IotumRow
	Oddities  []OddityRow
	Cyphers   []DeviceRow
	Artifacts []DeviceRow
}

// Validate checks every row and that the iotum brackets cover 1-100 exactly
// once, so any d100 roll finds a row.
//
// Postcondition: Returns nil iff all tables are non-empty and valid; otherwise
// the error wraps fault.ErrDataFormat.
func (t Tables) Validate() error {
	if len(t.Iotum) == 0 || len(t.Oddities) == 0 || len(t.Cyphers) == 0 || len(t.Artifacts) == 0 {
		return fmt.Errorf("%w: iotum, oddities, cyphers, and artifacts tables must all be non-empty", fault.ErrDataFormat)
	}
	for _, r := range t.Iotum {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, r := range t.Oddities {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, r := range t.Cyphers {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("cyphers: %w", err)
		}
	}
	for _, r := range t.Artifacts {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("artifacts: %w", err)
		}
	}
	return validateBrackets(t.Iotum)
}

func validateBrackets(rows []IotumRow) error {
	sorted := make([]IotumRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinRoll < sorted[j].MinRoll })

	next := 1
	for _, r := range sorted {
		if r.MinRoll != next {
			return fmt.Errorf("%w: iotum %q starts at %d, expected %d (gap or overlap)",
				fault.ErrDataFormat, r.Name, r.MinRoll, next)
		}
		next = r.MaxRoll + 1
	}
	if next != 101 {
		return fmt.Errorf("%w: iotum brackets end at %d, expected 100", fault.ErrDataFormat, next-1)
	}
	return nil
}

// LoadTables reads the four table files from dir and validates them.
//
// Precondition: dir is a readable directory containing IotumFile,
// OdditiesFile, CyphersFile, and ArtifactsFile.
// Postcondition: Returns valid Tables or the first encountered error.
func LoadTables(dir string) (Tables, error) {
	var t Tables
	files := []struct {
		name string
		dst  any
	}{
		{IotumFile, &t.Iotum},
		{OdditiesFile, &t.Oddities},
		{CyphersFile, &t.Cyphers},
		{ArtifactsFile, &t.Artifacts},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Tables{}, fmt.Errorf("LoadTables: cannot read file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, f.dst); err != nil {
			return Tables{}, fmt.Errorf("%w: LoadTables: cannot parse file %q: %w", fault.ErrDataFormat, path, err)
		}
	}
	if err := t.Validate(); err != nil {
		return Tables{}, fmt.Errorf("LoadTables: %q: %w", dir, err)
	}
	return t, nil
}
