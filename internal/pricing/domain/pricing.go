package domain

// PathParameters 合约与市场参数，构造后只读
type PathParameters struct {
	SpotPrice      float64 // 标的现价
	TimeToMaturity float64 // 到期时间 (年)
	RiskFreeRate   float64 // 无风险利率，可为负
	Volatility     float64 // 年化波动率
	DividendYield  float64 // 连续股息率
	Steps          int     // 二叉树步数 N
}

// PricingModel 二叉树定价模型
// 参数与两个诊断开关在构造时确定，之后不可变
type PricingModel struct {
	params        PathParameters
	pathDependent bool
	storePaths    bool
}

// NewPricingModel 创建定价模型，默认不依赖路径且不保留价格树
func NewPricingModel(params PathParameters) *PricingModel {
	return &PricingModel{params: params}
}

// WithPathDependency 返回收益依赖完整路径的模型副本。
// 重建节点历史需要整棵价格树，因此同时开启路径保留。
func (m *PricingModel) WithPathDependency() *PricingModel {
	cp := *m
	cp.pathDependent = true
	cp.storePaths = true
	return &cp
}

// WithPathStorage 返回在结果中保留价格树的模型副本
func (m *PricingModel) WithPathStorage() *PricingModel {
	cp := *m
	cp.storePaths = true
	return &cp
}

func (m *PricingModel) Params() PathParameters { return m.params }

func (m *PricingModel) PathDependent() bool { return m.pathDependent }

func (m *PricingModel) StorePaths() bool { return m.storePaths }

// PayoffFunc 收益函数：入参为节点价格历史与估值时间 (年)。
// history 由引擎复用，回调结束后不得持有。
// 路径依赖时 history[k] 为第 k 行第 j 列的价格 (k < j 时为 0)，否则只含当前节点价格。
type PayoffFunc func(history []float64, t float64) float64

// ExerciseDecisionFunc 提前行权判断：返回 true 表示在该节点立即行权
type ExerciseDecisionFunc func(history []float64, immediate, continuation float64, step int) bool

// PricingResult 单次定价的输出
type PricingResult struct {
	// Price 根节点价值
	Price float64
	// Paths 完整价格树，第 i 行有 i+1 个节点；未开启路径保留时为 nil
	Paths [][]float64
	// EarlyExerciseBoundary 长度为 Steps+1，记录每一步触发行权的标的价格，未行权处为 NaN。
	// 未提供行权函数时为 nil。
	EarlyExerciseBoundary []float64
}
