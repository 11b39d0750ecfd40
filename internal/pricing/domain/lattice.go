package domain

import "math"

// latticeParams 由合约参数派生、所有节点共用的标量
type latticeParams struct {
	dt   float64 // 步长
	u    float64 // 上行乘数
	d    float64 // 下行乘数
	p    float64 // 风险中性上行概率
	disc float64 // 单步贴现因子
}

func deriveLatticeParams(params PathParameters) latticeParams {
	dt := params.TimeToMaturity / float64(params.Steps)
	u := math.Exp(params.Volatility * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp((params.RiskFreeRate-params.DividendYield)*dt) - d) / (u - d)
	if u == d {
		// 零波动率：上下子节点重合，取任意凸组合结果相同
		p = 0.5
	}
	return latticeParams{
		dt:   dt,
		u:    u,
		d:    d,
		p:    p,
		disc: math.Exp(-params.RiskFreeRate * dt),
	}
}

// nodePrice 节点 (i, j) 的标的价格：i 步中 j 次上行
func (lp latticeParams) nodePrice(spot float64, i, j int) float64 {
	return spot * math.Pow(lp.u, float64(j)) * math.Pow(lp.d, float64(i-j))
}

// NodeCount 二叉树节点总数
func (m *PricingModel) NodeCount() int {
	n := m.params.Steps
	if n < 0 {
		return 0
	}
	return (n + 1) * (n + 2) / 2
}

// Price 在 CRR 二叉树上对收益函数定价。
// exercise 为 nil 时按欧式处理；否则在每个非到期节点比较立即行权与继续持有。
// 不做参数校验，非法输入以 NaN/Inf 的形式传播到结果中。
func (m *PricingModel) Price(payoff PayoffFunc, exercise ExerciseDecisionFunc) *PricingResult {
	n := m.params.Steps
	if n < 0 {
		return &PricingResult{Price: math.NaN()}
	}

	lp := deriveLatticeParams(m.params)
	spot := m.params.SpotPrice

	var paths [][]float64
	if m.storePaths {
		paths = make([][]float64, n+1)
		for i := 0; i <= n; i++ {
			row := make([]float64, i+1)
			for j := 0; j <= i; j++ {
				row[j] = lp.nodePrice(spot, i, j)
			}
			paths[i] = row
		}
	}

	priceAt := func(i, j int) float64 {
		if paths != nil {
			return paths[i][j]
		}
		return lp.nodePrice(spot, i, j)
	}

	history := make([]float64, 0, n+1)
	historyAt := func(i, j int) []float64 {
		history = history[:0]
		if !m.pathDependent {
			return append(history, priceAt(i, j))
		}
		// 第 j 列在 k < j 的行上不存在节点，按未到达的方阵上三角记为 0
		for k := 0; k <= i; k++ {
			if j > k {
				history = append(history, 0)
				continue
			}
			history = append(history, paths[k][j])
		}
		return history
	}

	values := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		values[j] = payoff(historyAt(n, j), m.params.TimeToMaturity)
	}

	var boundary []float64
	if exercise != nil {
		boundary = make([]float64, n+1)
		for i := range boundary {
			boundary[i] = math.NaN()
		}
	}

	for i := n - 1; i >= 0; i-- {
		t := float64(i) * lp.dt
		for j := 0; j <= i; j++ {
			continuation := lp.disc * (lp.p*values[j+1] + (1-lp.p)*values[j])
			if exercise == nil {
				values[j] = continuation
				continue
			}

			h := historyAt(i, j)
			immediate := payoff(h, t)
			if exercise(h, immediate, continuation, i) {
				values[j] = immediate
				// 同一步多个节点行权时保留 j 最大者
				boundary[i] = priceAt(i, j)
			} else {
				values[j] = continuation
			}
		}
	}

	return &PricingResult{
		Price:                 values[0],
		Paths:                 paths,
		EarlyExerciseBoundary: boundary,
	}
}
