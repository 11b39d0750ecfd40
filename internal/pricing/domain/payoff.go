package domain

import (
	"math"

	"github.com/montanaflynn/stats"
)

// VanillaCall 普通看涨收益 max(S_T - K, 0)
func VanillaCall(strike float64) PayoffFunc {
	return func(history []float64, _ float64) float64 {
		return math.Max(last(history)-strike, 0)
	}
}

// VanillaPut 普通看跌收益 max(K - S_T, 0)
func VanillaPut(strike float64) PayoffFunc {
	return func(history []float64, _ float64) float64 {
		return math.Max(strike-last(history), 0)
	}
}

// ArithmeticAsianCall 以路径算术平均价结算的看涨收益
func ArithmeticAsianCall(strike float64) PayoffFunc {
	return func(history []float64, _ float64) float64 {
		return math.Max(arithmeticMean(history)-strike, 0)
	}
}

// ArithmeticAsianPut 以路径算术平均价结算的看跌收益
func ArithmeticAsianPut(strike float64) PayoffFunc {
	return func(history []float64, _ float64) float64 {
		return math.Max(strike-arithmeticMean(history), 0)
	}
}

// GeometricAsianCall 以路径几何平均价结算的看涨收益
func GeometricAsianCall(strike float64) PayoffFunc {
	return func(history []float64, _ float64) float64 {
		return math.Max(geometricMean(history)-strike, 0)
	}
}

// GeometricAsianPut 以路径几何平均价结算的看跌收益
func GeometricAsianPut(strike float64) PayoffFunc {
	return func(history []float64, _ float64) float64 {
		return math.Max(strike-geometricMean(history), 0)
	}
}

// ExerciseWhenOptimal 美式行权：立即行权价值严格大于继续持有价值时行权
func ExerciseWhenOptimal() ExerciseDecisionFunc {
	return func(_ []float64, immediate, continuation float64, _ int) bool {
		return immediate > continuation
	}
}

// NewPayoff 按期权类型与收益结构选择收益函数，组合不受支持时返回 false
func NewPayoff(optionType OptionType, style PayoffStyle, strike float64) (PayoffFunc, bool) {
	switch style {
	case PayoffStyleVanilla:
		switch optionType {
		case OptionTypeCall:
			return VanillaCall(strike), true
		case OptionTypePut:
			return VanillaPut(strike), true
		}
	case PayoffStyleAsianArithmetic:
		switch optionType {
		case OptionTypeCall:
			return ArithmeticAsianCall(strike), true
		case OptionTypePut:
			return ArithmeticAsianPut(strike), true
		}
	case PayoffStyleAsianGeometric:
		switch optionType {
		case OptionTypeCall:
			return GeometricAsianCall(strike), true
		case OptionTypePut:
			return GeometricAsianPut(strike), true
		}
	}
	return nil, false
}

// NewExerciseDecision 欧式返回 nil，美式返回最优行权判断
func NewExerciseDecision(style ExerciseStyle) ExerciseDecisionFunc {
	if style == ExerciseStyleAmerican {
		return ExerciseWhenOptimal()
	}
	return nil
}

func last(history []float64) float64 {
	if len(history) == 0 {
		return math.NaN()
	}
	return history[len(history)-1]
}

func arithmeticMean(history []float64) float64 {
	mean, err := stats.Mean(history)
	if err != nil {
		return math.NaN()
	}
	return mean
}

// geometricMean 在对数空间求平均，避免长路径连乘溢出
func geometricMean(history []float64) float64 {
	logs := make([]float64, len(history))
	for i, v := range history {
		logs[i] = math.Log(v)
	}
	mean, err := stats.Mean(logs)
	if err != nil {
		return math.NaN()
	}
	return math.Exp(mean)
}
