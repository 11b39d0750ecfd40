// Package metrics 提供定价调用的 Prometheus 指标
package metrics

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wyfcoding/latticepricing/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// 定价调用计数，按收益结构/行权方式/结果分组
	PricingRequestsTotal *prometheus.CounterVec
	// 定价耗时
	PricingDuration *prometheus.HistogramVec
	// 单次定价的二叉树节点数
	LatticeNodes prometheus.Histogram
	// 触发提前行权的时间步数累计
	EarlyExerciseSteps prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	subsystem := strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(serviceName)
	return &Metrics{
		PricingRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total option pricing requests",
		}, []string{"payoff_style", "exercise_style", "status"}),
		PricingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pricing",
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Lattice pricing duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"payoff_style", "exercise_style"}),
		LatticeNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pricing",
			Subsystem: subsystem,
			Name:      "lattice_nodes",
			Help:      "Number of lattice nodes per pricing call",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 7),
		}),
		EarlyExerciseSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: subsystem,
			Name:      "early_exercise_steps_total",
			Help:      "Total time steps at which early exercise was optimal",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.PricingRequestsTotal,
		m.PricingDuration,
		m.LatticeNodes,
		m.EarlyExerciseSteps,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}

	logger.Debug(context.Background(), "Metrics registered successfully")
	return nil
}

// LogSnapshot 将当前指标值写入日志，替代 HTTP 暴露
func LogSnapshot(ctx context.Context, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			args := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				args = append(args, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				args = append(args, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				args = append(args, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			logger.Info(ctx, "metric snapshot", args...)
		}
	}
	return nil
}

// Collector 指标收集器接口
type Collector interface {
	// 记录一次定价调用
	RecordPricing(payoffStyle, exerciseStyle, status string, duration float64, nodes int)
	// 记录提前行权的时间步数
	RecordEarlyExercise(steps int)
}

// DefaultMetricsCollector 默认指标收集器实现
type DefaultMetricsCollector struct {
	metrics *Metrics
}

// NewDefaultMetricsCollector 创建默认指标收集器
func NewDefaultMetricsCollector(metrics *Metrics) *DefaultMetricsCollector {
	return &DefaultMetricsCollector{
		metrics: metrics,
	}
}

// RecordPricing 记录定价调用
func (dmc *DefaultMetricsCollector) RecordPricing(payoffStyle, exerciseStyle, status string, duration float64, nodes int) {
	dmc.metrics.PricingRequestsTotal.WithLabelValues(payoffStyle, exerciseStyle, status).Inc()
	if nodes > 0 {
		dmc.metrics.PricingDuration.WithLabelValues(payoffStyle, exerciseStyle).Observe(duration)
		dmc.metrics.LatticeNodes.Observe(float64(nodes))
	}
}

// RecordEarlyExercise 记录提前行权
func (dmc *DefaultMetricsCollector) RecordEarlyExercise(steps int) {
	dmc.metrics.EarlyExerciseSteps.Add(float64(steps))
}
