package application

import (
	"fmt"
	"math"
	"strings"

	"github.com/wyfcoding/latticepricing/internal/pricing/domain"
)

// normalizedCommand 校验通过后的命令
type normalizedCommand struct {
	PriceOptionCommand
	optionType    domain.OptionType
	payoffStyle   domain.PayoffStyle
	exerciseStyle domain.ExerciseStyle
	payoff        domain.PayoffFunc
	exercise      domain.ExerciseDecisionFunc
}

// validate 引擎本身不做校验，所有参数检查集中在这里
func validate(cmd PriceOptionCommand, maxSteps int) (*normalizedCommand, error) {
	if cmd.Symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}

	optionType := domain.OptionType(strings.ToUpper(cmd.OptionType))
	if !optionType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOptionType, cmd.OptionType)
	}

	payoffStyle := domain.PayoffStyleVanilla
	if cmd.PayoffStyle != "" {
		payoffStyle = domain.PayoffStyle(strings.ToUpper(cmd.PayoffStyle))
	}
	if !payoffStyle.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPayoffStyle, cmd.PayoffStyle)
	}

	exerciseStyle := domain.ExerciseStyleEuropean
	if cmd.ExerciseStyle != "" {
		exerciseStyle = domain.ExerciseStyle(strings.ToUpper(cmd.ExerciseStyle))
	}
	if !exerciseStyle.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExerciseStyle, cmd.ExerciseStyle)
	}

	switch {
	case !positive(cmd.UnderlyingPrice):
		return nil, fmt.Errorf("%w: underlying price must be positive, got %v", ErrInvalidInput, cmd.UnderlyingPrice)
	case !positive(cmd.StrikePrice):
		return nil, fmt.Errorf("%w: strike price must be positive, got %v", ErrInvalidInput, cmd.StrikePrice)
	case !positive(cmd.TimeToMaturity):
		return nil, fmt.Errorf("%w: time to maturity must be positive, got %v", ErrInvalidInput, cmd.TimeToMaturity)
	case !finite(cmd.Volatility) || cmd.Volatility < 0:
		return nil, fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidInput, cmd.Volatility)
	case !finite(cmd.RiskFreeRate):
		return nil, fmt.Errorf("%w: risk free rate must be finite", ErrInvalidInput)
	case !finite(cmd.DividendYield):
		return nil, fmt.Errorf("%w: dividend yield must be finite", ErrInvalidInput)
	case cmd.Steps < 1:
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidInput, cmd.Steps)
	case maxSteps > 0 && cmd.Steps > maxSteps:
		return nil, fmt.Errorf("%w: steps %d exceeds limit %d", ErrInvalidInput, cmd.Steps, maxSteps)
	}

	payoff, ok := domain.NewPayoff(optionType, payoffStyle, cmd.StrikePrice)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidPayoffStyle, payoffStyle, optionType)
	}

	return &normalizedCommand{
		PriceOptionCommand: cmd,
		optionType:         optionType,
		payoffStyle:        payoffStyle,
		exerciseStyle:      exerciseStyle,
		payoff:             payoff,
		exercise:           domain.NewExerciseDecision(exerciseStyle),
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}
