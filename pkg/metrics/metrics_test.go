package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/latticepricing/pkg/metrics"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("lattice-pricing")
	require.NoError(t, m.Register(reg))
	c := metrics.NewDefaultMetricsCollector(m)

	c.RecordPricing("VANILLA", "AMERICAN", "success", 0.002, 5151)
	c.RecordPricing("VANILLA", "AMERICAN", "success", 0.003, 5151)
	c.RecordPricing("unknown", "unknown", "invalid", 0, 0)
	c.RecordEarlyExercise(42)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PricingRequestsTotal.WithLabelValues("VANILLA", "AMERICAN", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PricingRequestsTotal.WithLabelValues("unknown", "unknown", "invalid")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.EarlyExerciseSteps))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LatticeNodes))

	count, err := testutil.GatherAndCount(reg, "pricing_lattice_pricing_lattice_nodes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegister_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("pricing")
	require.NoError(t, m.Register(reg))

	assert.Error(t, m.Register(reg))
}

func TestLogSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("pricing")
	require.NoError(t, m.Register(reg))
	metrics.NewDefaultMetricsCollector(m).RecordPricing("VANILLA", "EUROPEAN", "success", 0.001, 10)

	assert.NoError(t, metrics.LogSnapshot(context.Background(), reg))
}
