package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wyfcoding/latticepricing/internal/pricing/domain"
)

func TestCalculateBlackScholes(t *testing.T) {
	input := domain.BlackScholesInput{S: 100, K: 100, T: 1, R: 0.05, V: 0.2}

	assert.InDelta(t, 10.4506, domain.CalculateBlackScholes(domain.OptionTypeCall, input), 1e-4)
	assert.InDelta(t, 5.5735, domain.CalculateBlackScholes(domain.OptionTypePut, input), 1e-4)
}

func TestCalculateBlackScholes_ParityWithDividend(t *testing.T) {
	input := domain.BlackScholesInput{S: 105, K: 95, T: 0.75, R: 0.03, Q: 0.02, V: 0.3}

	call := domain.CalculateBlackScholes(domain.OptionTypeCall, input)
	put := domain.CalculateBlackScholes(domain.OptionTypePut, input)

	want := input.S*math.Exp(-input.Q*input.T) - input.K*math.Exp(-input.R*input.T)
	assert.InDelta(t, want, call-put, 1e-10)
}

func TestLatticeConvergesToBlackScholes(t *testing.T) {
	params := standardParams()
	params.DividendYield = 0.02
	params.Steps = 500

	lattice := domain.NewPricingModel(params).Price(domain.VanillaCall(110), nil)
	closed := domain.CalculateBlackScholes(domain.OptionTypeCall, domain.BlackScholesInput{
		S: params.SpotPrice, K: 110, T: params.TimeToMaturity, R: params.RiskFreeRate, Q: params.DividendYield, V: params.Volatility,
	})

	assert.InDelta(t, closed, lattice.Price, 0.05)
}
