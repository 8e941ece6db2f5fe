package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged expression evaluation.
// All rolls are logged at debug level with expression, dice values, modifier, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or an error wrapping fault.ErrDataFormat.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	result, err := RollExpr(expr, r.src)
	if err != nil {
		r.logger.Debug("dice roll rejected", zap.String("expression", expr), zap.Error(err))
		return RollResult{}, err
	}
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result, nil
}

// Evaluate rolls expr and returns its total, logging the roll.
func (r *Roller) Evaluate(expr string) (int, error) {
	result, err := r.RollExpr(expr)
	if err != nil {
		return 0, err
	}
	return result.Total(), nil
}
