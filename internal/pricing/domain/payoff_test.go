package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/latticepricing/internal/pricing/domain"
)

func TestPayoffs(t *testing.T) {
	path := []float64{90, 100, 110, 120}

	tests := []struct {
		name   string
		payoff domain.PayoffFunc
		want   float64
	}{
		{"vanilla call in the money", domain.VanillaCall(100), 20},
		{"vanilla call out of the money", domain.VanillaCall(130), 0},
		{"vanilla put in the money", domain.VanillaPut(125), 5},
		{"vanilla put out of the money", domain.VanillaPut(100), 0},
		{"arithmetic asian call", domain.ArithmeticAsianCall(100), 5},
		{"arithmetic asian put", domain.ArithmeticAsianPut(110), 5},
		{"geometric asian put", domain.GeometricAsianPut(110), 110 - math.Pow(90*100*110*120, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.payoff(path, 1.0), 1e-9)
		})
	}
}

func TestGeometricAsian_LongPathDoesNotOverflow(t *testing.T) {
	path := make([]float64, 1000)
	for i := range path {
		path[i] = 1e3
	}

	got := domain.GeometricAsianCall(900)(path, 1.0)

	assert.InDelta(t, 100.0, got, 1e-6)
}

func TestPayoffs_EmptyHistoryIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(domain.VanillaCall(100)(nil, 0)))
	assert.True(t, math.IsNaN(domain.ArithmeticAsianCall(100)(nil, 0)))
	assert.True(t, math.IsNaN(domain.GeometricAsianCall(100)(nil, 0)))
}

func TestExerciseWhenOptimal(t *testing.T) {
	decide := domain.ExerciseWhenOptimal()

	assert.True(t, decide(nil, 5, 4, 0))
	assert.False(t, decide(nil, 4, 4, 0), "ties continue")
	assert.False(t, decide(nil, 3, 4, 0))
}

func TestNewPayoff(t *testing.T) {
	path := []float64{100, 120}

	call, ok := domain.NewPayoff(domain.OptionTypeCall, domain.PayoffStyleVanilla, 100)
	require.True(t, ok)
	assert.Equal(t, 20.0, call(path, 0))

	asian, ok := domain.NewPayoff(domain.OptionTypeCall, domain.PayoffStyleAsianArithmetic, 100)
	require.True(t, ok)
	assert.Equal(t, 10.0, asian(path, 0))

	_, ok = domain.NewPayoff(domain.OptionType("STRADDLE"), domain.PayoffStyleVanilla, 100)
	assert.False(t, ok)

	_, ok = domain.NewPayoff(domain.OptionTypePut, domain.PayoffStyle("LOOKBACK"), 100)
	assert.False(t, ok)
}

func TestNewExerciseDecision(t *testing.T) {
	assert.Nil(t, domain.NewExerciseDecision(domain.ExerciseStyleEuropean))
	assert.NotNil(t, domain.NewExerciseDecision(domain.ExerciseStyleAmerican))
}

func TestStyles(t *testing.T) {
	assert.True(t, domain.PayoffStyleAsianGeometric.PathDependent())
	assert.False(t, domain.PayoffStyleVanilla.PathDependent())
	assert.False(t, domain.PayoffStyle("").IsValid())
	assert.False(t, domain.ExerciseStyle("BERMUDAN").IsValid())
	assert.True(t, domain.OptionTypePut.IsValid())
}
