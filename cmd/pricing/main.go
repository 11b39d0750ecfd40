package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/wyfcoding/latticepricing/internal/pricing/application"
	"github.com/wyfcoding/latticepricing/internal/pricing/domain"
	configpkg "github.com/wyfcoding/latticepricing/pkg/config"
	"github.com/wyfcoding/latticepricing/pkg/logger"
	"github.com/wyfcoding/latticepricing/pkg/metrics"
)

func main() {
	configPath := pflag.StringP("config", "c", configpkg.GetEnv("APP_CONFIG", "configs/pricing.toml"), "path to the TOML config file")
	envFile := pflag.String("env-file", ".env", "optional .env file loaded before the config")
	steps := pflag.IntP("steps", "n", 0, "override pricing.steps")
	pflag.Parse()

	if err := configpkg.LoadEnvFile(*envFile); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}
	cfg, err := configpkg.LoadWithDefaults(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *steps > 0 {
		cfg.Pricing.Steps = *steps
	}
	if err := logger.Init(cfg.Logger.ToLogger()); err != nil {
		slog.Error("failed to init logger", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	reg := prometheus.NewRegistry()
	var collector metrics.Collector
	if cfg.Metrics.Enabled {
		m := metrics.New(cfg.ServiceName)
		if err := m.Register(reg); err != nil {
			logger.Fatal(ctx, "failed to register metrics", "error", err)
		}
		collector = metrics.NewDefaultMetricsCollector(m)
	}

	svc := application.NewPricingService(collector, application.WithMaxSteps(cfg.Pricing.MaxSteps))
	contracts := demoContracts(cfg.Pricing)
	done := logger.LogDuration(ctx, "demo batch finished", "contracts", len(contracts), "steps", cfg.Pricing.Steps)
	batch, err := svc.BatchPriceOptions(ctx, application.BatchPriceOptionsCommand{
		Contracts: contracts,
	})
	done()
	if err != nil {
		logger.Fatal(ctx, "batch pricing failed", "error", err)
	}
	for i, failure := range batch.Errors {
		logger.Error(ctx, "contract not priced", "index", i, "error", failure)
	}

	render(batch.Results)

	if cfg.Metrics.Enabled && cfg.Metrics.LogSnapshot {
		if err := metrics.LogSnapshot(ctx, reg); err != nil {
			logger.Warn(ctx, "failed to gather metrics", "error", err)
		}
	}
	if batch.FailureCount > 0 {
		os.Exit(1)
	}
}

// demoContracts 欧式看涨、算术平均亚式看涨、美式看跌
func demoContracts(p configpkg.PricingConfig) []application.PriceOptionCommand {
	base := application.PriceOptionCommand{
		Symbol:          p.Symbol,
		StrikePrice:     p.StrikePrice,
		UnderlyingPrice: p.SpotPrice,
		TimeToMaturity:  p.TimeToMaturity,
		Volatility:      p.Volatility,
		RiskFreeRate:    p.RiskFreeRate,
		DividendYield:   p.DividendYield,
		Steps:           p.Steps,
	}

	europeanCall := base
	europeanCall.OptionType = string(domain.OptionTypeCall)

	asianCall := base
	asianCall.OptionType = string(domain.OptionTypeCall)
	asianCall.PayoffStyle = string(domain.PayoffStyleAsianArithmetic)

	americanPut := base
	americanPut.OptionType = string(domain.OptionTypePut)
	americanPut.ExerciseStyle = string(domain.ExerciseStyleAmerican)

	return []application.PriceOptionCommand{europeanCall, asianCall, americanPut}
}

func render(results []*application.PricingResultDTO) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Option", "Payoff", "Exercise", "Steps", "Price", "Black-Scholes"})
	for _, r := range results {
		bs := "-"
		if r.BlackScholesPrice.Valid {
			bs = r.BlackScholesPrice.Decimal.StringFixed(4)
		}
		table.Append([]string{
			r.OptionType,
			r.PayoffStyle,
			r.ExerciseStyle,
			fmt.Sprint(r.Steps),
			r.OptionPrice.StringFixed(4),
			bs,
		})
	}
	table.Render()
}
