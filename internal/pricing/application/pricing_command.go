package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/latticepricing/internal/pricing/domain"
	"github.com/wyfcoding/latticepricing/pkg/logger"
	"github.com/wyfcoding/latticepricing/pkg/metrics"
)

const (
	statusSuccess   = "success"
	statusInvalid   = "invalid"
	statusNonFinite = "non_finite"
	labelUnknown    = "unknown"
)

// DefaultMaxSteps 单次定价允许的最大步数，开启路径保留时内存为 O(N²)
const DefaultMaxSteps = 5000

// PricingCommandService 处理期权定价命令
// 每次调用同步完成，不持有跨调用状态
type PricingCommandService struct {
	collector metrics.Collector
	maxSteps  int
	now       func() time.Time
}

// Option 定价服务可选项
type Option func(*PricingCommandService)

// WithMaxSteps 设置步数上限，<=0 表示不限制
func WithMaxSteps(n int) Option {
	return func(c *PricingCommandService) {
		c.maxSteps = n
	}
}

// WithClock 替换时间来源
func WithClock(now func() time.Time) Option {
	return func(c *PricingCommandService) {
		c.now = now
	}
}

// NewPricingCommandService 创建新的 PricingCommandService 实例，collector 可为 nil
func NewPricingCommandService(collector metrics.Collector, opts ...Option) *PricingCommandService {
	c := &PricingCommandService{
		collector: collector,
		maxSteps:  DefaultMaxSteps,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PriceOption 期权定价
func (c *PricingCommandService) PriceOption(ctx context.Context, cmd PriceOptionCommand) (*PricingResultDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, requestID)

	nc, err := validate(cmd, c.maxSteps)
	if err != nil {
		logger.Warn(ctx, "rejected pricing command", "symbol", cmd.Symbol, "error", err)
		c.record(labelUnknown, labelUnknown, statusInvalid, 0, 0)
		return nil, err
	}

	model := domain.NewPricingModel(domain.PathParameters{
		SpotPrice:      nc.UnderlyingPrice,
		TimeToMaturity: nc.TimeToMaturity,
		RiskFreeRate:   nc.RiskFreeRate,
		Volatility:     nc.Volatility,
		DividendYield:  nc.DividendYield,
		Steps:          nc.Steps,
	})
	if nc.payoffStyle.PathDependent() {
		model = model.WithPathDependency()
	} else if nc.StorePaths {
		model = model.WithPathStorage()
	}

	start := c.now()
	res := model.Price(nc.payoff, nc.exercise)
	elapsed := c.now().Sub(start)

	payoffLabel, exerciseLabel := string(nc.payoffStyle), string(nc.exerciseStyle)
	if math.IsNaN(res.Price) || math.IsInf(res.Price, 0) {
		logger.Error(ctx, "non-finite lattice price", "symbol", nc.Symbol, "price", res.Price, "steps", nc.Steps)
		c.record(payoffLabel, exerciseLabel, statusNonFinite, elapsed, model.NodeCount())
		return nil, fmt.Errorf("%w: %v", ErrNonFinitePrice, res.Price)
	}
	c.record(payoffLabel, exerciseLabel, statusSuccess, elapsed, model.NodeCount())

	exercisedSteps := countExercised(res.EarlyExerciseBoundary)
	if exercisedSteps > 0 && c.collector != nil {
		c.collector.RecordEarlyExercise(exercisedSteps)
	}

	dto := &PricingResultDTO{
		RequestID:             requestID,
		Symbol:                nc.Symbol,
		OptionType:            string(nc.optionType),
		PayoffStyle:           payoffLabel,
		ExerciseStyle:         exerciseLabel,
		OptionPrice:           decimal.NewFromFloat(res.Price),
		UnderlyingPrice:       decimal.NewFromFloat(nc.UnderlyingPrice),
		StrikePrice:           decimal.NewFromFloat(nc.StrikePrice),
		Steps:                 nc.Steps,
		PricingModel:          domain.PricingModelName,
		CalculatedAt:          c.now().Unix(),
		EarlyExerciseBoundary: toNullDecimals(res.EarlyExerciseBoundary),
	}
	if nc.StorePaths {
		dto.Paths = res.Paths
	}
	if nc.payoffStyle == domain.PayoffStyleVanilla && nc.exerciseStyle == domain.ExerciseStyleEuropean && nc.Volatility > 0 {
		bs := domain.CalculateBlackScholes(nc.optionType, domain.BlackScholesInput{
			S: nc.UnderlyingPrice,
			K: nc.StrikePrice,
			T: nc.TimeToMaturity,
			R: nc.RiskFreeRate,
			Q: nc.DividendYield,
			V: nc.Volatility,
		})
		dto.BlackScholesPrice = decimal.NewNullDecimal(decimal.NewFromFloat(bs))
	}

	logger.Info(ctx, "option priced",
		"symbol", nc.Symbol,
		"option_type", nc.optionType,
		"payoff_style", nc.payoffStyle,
		"exercise_style", nc.exerciseStyle,
		"steps", nc.Steps,
		"price", res.Price,
		"exercised_steps", exercisedSteps,
		"duration", elapsed,
	)
	return dto, nil
}

// BatchPriceOptions 批量定价，按顺序逐个计算
func (c *PricingCommandService) BatchPriceOptions(ctx context.Context, cmd BatchPriceOptionsCommand) (*BatchPricingResult, error) {
	if cmd.BatchID == "" {
		cmd.BatchID = uuid.NewString()
	}

	results := make([]*PricingResultDTO, 0, len(cmd.Contracts))
	failures := make(map[int]error)
	totalTime := 0.0

	for i, contract := range cmd.Contracts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		startTime := c.now()
		result, err := c.PriceOption(ctx, contract)
		totalTime += c.now().Sub(startTime).Seconds()

		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			failures[i] = err
			continue
		}
		results = append(results, result)
	}

	avg := 0.0
	if len(cmd.Contracts) > 0 {
		avg = totalTime / float64(len(cmd.Contracts))
	}

	logger.Info(ctx, "batch pricing completed",
		"batch_id", cmd.BatchID,
		"total", len(cmd.Contracts),
		"success", len(results),
		"failure", len(failures),
	)

	return &BatchPricingResult{
		BatchID:      cmd.BatchID,
		Results:      results,
		Errors:       failures,
		SuccessCount: len(results),
		FailureCount: len(failures),
		AverageTime:  avg,
	}, nil
}

func (c *PricingCommandService) record(payoffStyle, exerciseStyle, status string, elapsed time.Duration, nodes int) {
	if c.collector == nil {
		return
	}
	c.collector.RecordPricing(payoffStyle, exerciseStyle, status, elapsed.Seconds(), nodes)
}

func countExercised(boundary []float64) int {
	n := 0
	for _, v := range boundary {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}
