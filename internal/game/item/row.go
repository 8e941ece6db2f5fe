package item

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
)

// IotumRow is one roll-range bucket of the iotum table.
//
// Level and UnitsSalvaged are unset (0 and "") for the Plan seed row.
type IotumRow struct {
	MinRoll       int    `yaml:"min_roll"`
	MaxRoll       int    `yaml:"max_roll"`
	Name          string `yaml:"name"`
	Level         int    `yaml:"level"`
	UnitsSalvaged string `yaml:"units_salvaged"`
	Value         int    `yaml:"value"`
}

// OddityRow is one row of the oddities table.
type OddityRow struct {
	Description string `yaml:"description"`
	Source      string `yaml:"source"`
	Page        int    `yaml:"page"`
}

// DeviceRow is one row of the cyphers or artifacts table. Level is a dice
// expression evaluated every time the row is drawn.
type DeviceRow struct {
	Name   string `yaml:"name"`
	Level  string `yaml:"level"`
	Source string `yaml:"source"`
	Page   int    `yaml:"page"`
}

// Validate checks that the row satisfies its invariants.
//
// Postcondition: Returns nil iff the row can be materialized; otherwise the
// error wraps fault.ErrDataFormat.
func (r IotumRow) Validate() error {
	var errs []error
	if r.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if r.MinRoll < 1 || r.MaxRoll > 100 || r.MinRoll > r.MaxRoll {
		errs = append(errs, fmt.Errorf("roll range [%d, %d] must lie within [1, 100]", r.MinRoll, r.MaxRoll))
	}
	if r.Value < 1 || r.Value > dice.MaxValue {
		errs = append(errs, fmt.Errorf("value must be 1-%d, got %d", dice.MaxValue, r.Value))
	}
	if r.Name != PlanSeed {
		if r.Level < 1 || r.Level > dice.MaxValue {
			errs = append(errs, fmt.Errorf("level must be 1-%d, got %d", dice.MaxValue, r.Level))
		}
		if _, err := dice.Parse(r.UnitsSalvaged); err != nil {
			errs = append(errs, fmt.Errorf("units_salvaged: %w", err))
		}
	}
	return joinInvalid("iotum", r.Name, errs)
}

// Validate checks that the row satisfies its invariants.
func (r OddityRow) Validate() error {
	var errs []error
	if r.Description == "" {
		errs = append(errs, errors.New("description must not be empty"))
	}
	if r.Page < 0 {
		errs = append(errs, fmt.Errorf("page must be >= 0, got %d", r.Page))
	}
	return joinInvalid("oddity", r.Description, errs)
}

// Validate checks that the row satisfies its invariants.
func (r DeviceRow) Validate() error {
	var errs []error
	if r.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if _, err := dice.Parse(r.Level); err != nil {
		errs = append(errs, fmt.Errorf("level: %w", err))
	}
	if r.Page < 0 {
		errs = append(errs, fmt.Errorf("page must be >= 0, got %d", r.Page))
	}
	return joinInvalid("device", r.Name, errs)
}

func joinInvalid(kind, name string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: invalid %s %q: %w", fault.ErrDataFormat, kind, name, errors.Join(errs...))
}
