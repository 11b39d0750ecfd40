package application

import (
	"math"

	"github.com/shopspring/decimal"
)

// PricingResultDTO 定价结果
type PricingResultDTO struct {
	RequestID       string          `json:"request_id"`
	Symbol          string          `json:"symbol"`
	OptionType      string          `json:"option_type"`
	PayoffStyle     string          `json:"payoff_style"`
	ExerciseStyle   string          `json:"exercise_style"`
	OptionPrice     decimal.Decimal `json:"option_price"`
	UnderlyingPrice decimal.Decimal `json:"underlying_price"`
	StrikePrice     decimal.Decimal `json:"strike_price"`
	// BlackScholesPrice 仅普通欧式合约有闭式基准
	BlackScholesPrice     decimal.NullDecimal   `json:"black_scholes_price"`
	Steps                 int                   `json:"steps"`
	PricingModel          string                `json:"pricing_model"`
	CalculatedAt          int64                 `json:"calculated_at"`
	Paths                 [][]float64           `json:"paths,omitempty"`
	EarlyExerciseBoundary []decimal.NullDecimal `json:"early_exercise_boundary,omitempty"`
}

// toNullDecimals NaN 转为 null，其余原样保留
func toNullDecimals(values []float64) []decimal.NullDecimal {
	if values == nil {
		return nil
	}
	out := make([]decimal.NullDecimal, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = decimal.NewNullDecimal(decimal.NewFromFloat(v))
	}
	return out
}
