package domain

import (
	"math"
)

// BlackScholesInput Black-Scholes 模型输入
type BlackScholesInput struct {
	S float64 // 标的资产价格
	K float64 // 执行价格
	T float64 // 到期时间 (年)
	R float64 // 无风险利率
	Q float64 // 连续股息率
	V float64 // 波动率
}

// CalculateBlackScholes 计算欧式期权的闭式价格，作为二叉树收敛的基准
func CalculateBlackScholes(optionType OptionType, input BlackScholesInput) float64 {
	sqrtT := math.Sqrt(input.T)
	d1 := (math.Log(input.S/input.K) + (input.R-input.Q+0.5*input.V*input.V)*input.T) / (input.V * sqrtT)
	d2 := d1 - input.V*sqrtT

	discS := input.S * math.Exp(-input.Q*input.T)
	discK := input.K * math.Exp(-input.R*input.T)

	if optionType == OptionTypeCall {
		return discS*normCdf(d1) - discK*normCdf(d2)
	}
	return discK*normCdf(-d2) - discS*normCdf(-d1)
}

// normCdf 标准正态分布累积分布函数
func normCdf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
