package salvage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
)

// Rolls are the already-sampled dice that decide a salvage result.
type Rolls struct {
	Primary  int // d6
	Currency int // d10, becomes the shins
	TieBreak int // coin flip, chooses between the two outcomes of a 4 or 5
}

// Engine resolves salvage results against an item lookup.
type Engine struct {
	lookup item.Lookup
	dice   dice.Primitives
	logger *zap.Logger
}

// NewEngine creates an Engine.
//
// Precondition: lookup, prims, and logger must be non-nil.
func NewEngine(lookup item.Lookup, prims dice.Primitives, logger *zap.Logger) *Engine {
	return &Engine{lookup: lookup, dice: prims, logger: logger}
}

// ValidateLevel reports whether level is a usable item level.
//
// Postcondition: Returns nil iff 1 <= level <= 255; otherwise the error wraps
// fault.ErrDataFormat.
func ValidateLevel(level int) error {
	if level < 1 || level > dice.MaxValue {
		return fmt.Errorf("%w: item level must be 1-%d, got %d", fault.ErrDataFormat, dice.MaxValue, level)
	}
	return nil
}

// Random samples a d6 primary roll, a d10 of shins, and a coin flip, then
// resolves them.
func (e *Engine) Random(ctx context.Context, itemLevel int) (Result, error) {
	rolls := Rolls{
		Primary:  e.dice.D6(),
		Currency: e.dice.D10(),
		TieBreak: e.dice.CoinFlip(),
	}
	return e.Resolve(ctx, rolls, itemLevel)
}

// Resolve maps already-sampled rolls to a salvage result:
//
//	primary 1-2  nothing
//	primary 3    one oddity
//	primary 4    tie-break 1: one iotum, 2: d6 cyphers
//	primary 5    tie-break 1: two iotum, 2: one artifact
//	primary 6    three iotum
//
// A tie-break other than 1 or 2, or a primary roll outside 1-6, yields no reward.
//
// Postcondition: Shins == rolls.Currency and Parts == itemLevel. Any lookup
// error aborts the resolution and no partial result is returned.
func (e *Engine) Resolve(ctx context.Context, rolls Rolls, itemLevel int) (Result, error) {
	var (
		reward Reward = NoReward{}
		err    error
	)
	switch rolls.Primary {
	case 3:
		reward, err = e.oddity(ctx)
	case 4:
		switch rolls.TieBreak {
		case 1:
			reward, err = e.iotum(ctx, itemLevel, 1)
		case 2:
			reward, err = e.cyphers(ctx, e.dice.D6())
		}
	case 5:
		switch rolls.TieBreak {
		case 1:
			reward, err = e.iotum(ctx, itemLevel, 2)
		case 2:
			reward, err = e.artifact(ctx)
		}
	case 6:
		reward, err = e.iotum(ctx, itemLevel, 3)
	}
	if err != nil {
		return Result{}, fmt.Errorf("resolving salvage (roll %d, tie-break %d): %w", rolls.Primary, rolls.TieBreak, err)
	}

	result := Result{
		ID:     uuid.New().String(),
		Shins:  rolls.Currency,
		Parts:  itemLevel,
		Reward: reward,
	}
	e.logger.Debug("salvage resolved",
		zap.String("salvage_id", result.ID),
		zap.Int("roll", rolls.Primary),
		zap.Int("tie_break", rolls.TieBreak),
		zap.Int("shins", result.Shins),
		zap.Int("item_level", itemLevel),
		zap.String("reward", string(reward.Kind())),
	)
	return result, nil
}

func (e *Engine) oddity(ctx context.Context) (Reward, error) {
	o, err := e.lookup.Oddity(ctx)
	if err != nil {
		return nil, err
	}
	return OddityReward{Oddity: o}, nil
}

func (e *Engine) iotum(ctx context.Context, itemLevel, n int) (Reward, error) {
	found := make([]item.Iotum, 0, n)
	for i := 0; i < n; i++ {
		io, err := e.lookup.Iotum(ctx, itemLevel)
		if err != nil {
			return nil, err
		}
		found = append(found, io)
	}
	return IotumReward{Iotum: found}, nil
}

func (e *Engine) cyphers(ctx context.Context, n int) (Reward, error) {
	found := make([]item.Cypher, 0, n)
	for i := 0; i < n; i++ {
		c, err := e.lookup.Cypher(ctx)
		if err != nil {
			return nil, err
		}
		found = append(found, c)
	}
	return CypherReward{Cyphers: found}, nil
}

func (e *Engine) artifact(ctx context.Context) (Reward, error) {
	a, err := e.lookup.Artifact(ctx)
	if err != nil {
		return nil, err
	}
	return ArtifactReward{Artifact: a}, nil
}
