package application

// PriceOptionCommand 期权定价命令
type PriceOptionCommand struct {
	Symbol          string
	OptionType      string // CALL / PUT
	PayoffStyle     string // VANILLA / ASIAN_ARITHMETIC / ASIAN_GEOMETRIC，默认 VANILLA
	ExerciseStyle   string // EUROPEAN / AMERICAN，默认 EUROPEAN
	StrikePrice     float64
	UnderlyingPrice float64
	TimeToMaturity  float64 // 年
	Volatility      float64
	RiskFreeRate    float64
	DividendYield   float64
	Steps           int
	// StorePaths 在结果中返回完整价格树
	StorePaths bool
}

// BatchPriceOptionsCommand 批量定价命令
type BatchPriceOptionsCommand struct {
	Contracts []PriceOptionCommand
	BatchID   string
}

// BatchPricingResult 批量定价结果
type BatchPricingResult struct {
	BatchID      string
	Results      []*PricingResultDTO
	Errors       map[int]error // 按合约下标记录失败原因
	SuccessCount int
	FailureCount int
	AverageTime  float64
}
