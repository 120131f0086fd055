package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged rolls.
// Every roll is logged at debug level with its label, inputs and outcome.
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

// Intn satisfies Source so a Roller can be passed wherever a Source is accepted.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}

// Chance rolls against probability p and logs the outcome.
//
// Postcondition: same as Chance.
func (r *Roller) Chance(label string, p float64) bool {
	roll, ok := Chance(r.src, p)
	r.logger.Debug("chance roll",
		zap.String("label", label),
		zap.Float64("chance", p),
		zap.Int("roll", roll),
		zap.Bool("success", ok),
	)
	return ok
}

// Between rolls an integer in [lo, hi] and logs the outcome.
//
// Precondition: lo <= hi.
func (r *Roller) Between(label string, lo, hi int) int {
	v := Between(r.src, lo, hi)
	r.logger.Debug("range roll",
		zap.String("label", label),
		zap.Int("min", lo),
		zap.Int("max", hi),
		zap.Int("result", v),
	)
	return v
}
