package dice

import (
	"fmt"

	"github.com/cory-johannsen/numenera/internal/game/fault"
)

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count and every die is in
// [1, expr.Sides]; result.Total() <= MaxValue, otherwise an error wrapping
// fault.ErrDataFormat is returned.
func Roll(expr Expression, src Source) (RollResult, error) {
	if expr.Constant {
		return RollResult{Expression: expr.Raw, Modifier: expr.Modifier}, nil
	}

	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}

	result := RollResult{
		Expression: expr.Raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
	if total := result.Total(); total > MaxValue {
		return RollResult{}, fmt.Errorf("%w: %q rolled %d, exceeding %d", fault.ErrDataFormat, expr.Raw, total, MaxValue)
	}
	return result, nil
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a RollResult or an error wrapping fault.ErrDataFormat.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src)
}

// Evaluate parses and rolls expr, returning only the total.
//
// Postcondition: Returns a value in [0, MaxValue] or an error wrapping
// fault.ErrDataFormat.
func Evaluate(expr string, src Source) (int, error) {
	r, err := RollExpr(expr, src)
	if err != nil {
		return 0, err
	}
	return r.Total(), nil
}
