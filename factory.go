package main

import "fmt"

const (
	// maxDigits keeps the product of two operands within an int64.
	maxDigits = 9
	// maxOverride caps OverrideMax for the same reason.
	maxOverride = 999_999_999
)

// Selector characters accepted for Config.Operation.
const (
	SelectMultiply = "*"
	SelectAdd      = "+"
	SelectSubtract = "-"
	SelectRandom   = "?"
)

// Source is the randomness provider used to draw problems.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a non-negative random int in [0, n). n must be > 0.
	IntN(n int) int
}

// Config bounds the operands of generated problems.
type Config struct {
	FirstDigits  int `json:"first_digits"`
	SecondDigits int `json:"second_digits"`
	// OverrideMax, when non-zero, replaces both digit-count bounds with [1, OverrideMax].
	OverrideMax int    `json:"override_max,omitempty"`
	Operation   string `json:"operation"`
}

// DefaultConfig matches the command line defaults.
func DefaultConfig() Config {
	return Config{FirstDigits: 3, SecondDigits: 2, Operation: SelectMultiply}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfiguration.
func (c Config) Validate() error {
	if _, err := operationsFor(c.Operation); err != nil {
		return err
	}
	if c.OverrideMax != 0 {
		return checkOverride(c.OverrideMax)
	}
	if err := checkDigits(c.FirstDigits); err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	if err := checkDigits(c.SecondDigits); err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	return nil
}

func checkDigits(digits int) error {
	if digits < 1 || digits > maxDigits {
		return fmt.Errorf("%w: digit count %d outside [1, %d]", ErrInvalidConfiguration, digits, maxDigits)
	}
	return nil
}

func checkOverride(limit int) error {
	if limit < 1 || limit > maxOverride {
		return fmt.Errorf("%w: override maximum %d outside [1, %d]", ErrInvalidConfiguration, limit, maxOverride)
	}
	return nil
}

// operationsFor returns the operations enabled by a selector character.
func operationsFor(selector string) ([]Operation, error) {
	switch selector {
	case SelectMultiply:
		return []Operation{Multiply}, nil
	case SelectAdd:
		return []Operation{Add}, nil
	case SelectSubtract:
		return []Operation{Subtract}, nil
	case SelectRandom:
		return []Operation{Multiply, Add, Subtract}, nil
	}
	return nil, fmt.Errorf("%w: operation %q (want one of * + - ?)", ErrInvalidConfiguration, selector)
}

// DigitBounds returns the inclusive range of numbers with the given digit count.
func DigitBounds(digits int) (lo, hi int) {
	lo = 1
	for range digits - 1 {
		lo *= 10
	}
	return lo, lo*10 - 1
}

// DrawOperand draws a uniform integer in the digit-count range, or in
// [1, overrideMax] when overrideMax is non-zero.
func DrawOperand(rng Source, digits, overrideMax int) (int, error) {
	var lo, hi int
	if overrideMax != 0 {
		if err := checkOverride(overrideMax); err != nil {
			return 0, err
		}
		lo, hi = 1, overrideMax
	} else {
		if err := checkDigits(digits); err != nil {
			return 0, err
		}
		lo, hi = DigitBounds(digits)
	}
	return lo + rng.IntN(hi-lo+1), nil
}

// Factory produces problems from a validated Config.
type Factory struct {
	cfg Config
	ops []Operation
	rng Source
}

// NewFactory validates cfg and binds it to rng. The caller seeds rng once;
// the factory never reseeds it.
func NewFactory(cfg Config, rng Source) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ops, _ := operationsFor(cfg.Operation)
	return &Factory{cfg: cfg, ops: ops, rng: rng}, nil
}

// Next draws one problem: the operation first (only when several are
// enabled), then the first and second operands.
func (f *Factory) Next() Problem {
	op := f.ops[0]
	if len(f.ops) > 1 {
		op = f.ops[f.rng.IntN(len(f.ops))]
	}
	// Config was validated in NewFactory, the draws cannot fail.
	first, _ := DrawOperand(f.rng, f.cfg.FirstDigits, f.cfg.OverrideMax)
	second, _ := DrawOperand(f.rng, f.cfg.SecondDigits, f.cfg.OverrideMax)
	return NewProblem(op, first, second)
}

// Generate returns exactly count problems.
func (f *Factory) Generate(count int) ([]Problem, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: problem count %d", ErrInvalidConfiguration, count)
	}
	problems := make([]Problem, count)
	for i := range problems {
		problems[i] = f.Next()
	}
	return problems, nil
}
