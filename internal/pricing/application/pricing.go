package application

import (
	"context"

	"github.com/wyfcoding/latticepricing/pkg/metrics"
)

// PricingService 定价门面服务。
type PricingService struct {
	Command *PricingCommandService
}

// NewPricingService 构造函数。
func NewPricingService(collector metrics.Collector, opts ...Option) *PricingService {
	return &PricingService{
		Command: NewPricingCommandService(collector, opts...),
	}
}

func (s *PricingService) PriceOption(ctx context.Context, cmd PriceOptionCommand) (*PricingResultDTO, error) {
	return s.Command.PriceOption(ctx, cmd)
}

func (s *PricingService) BatchPriceOptions(ctx context.Context, cmd BatchPriceOptionsCommand) (*BatchPricingResult, error) {
	return s.Command.BatchPriceOptions(ctx, cmd)
}
