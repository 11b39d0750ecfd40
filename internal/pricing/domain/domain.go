// 包 二叉树定价服务的领域模型
package domain

// OptionType 期权类型
type OptionType string

const (
	OptionTypeCall OptionType = "CALL" // 看涨期权
	OptionTypePut  OptionType = "PUT"  // 看跌期权
)

// IsValid 判断期权类型是否受支持
func (t OptionType) IsValid() bool {
	return t == OptionTypeCall || t == OptionTypePut
}

// ExerciseStyle 行权方式
type ExerciseStyle string

const (
	ExerciseStyleEuropean ExerciseStyle = "EUROPEAN" // 仅到期行权
	ExerciseStyleAmerican ExerciseStyle = "AMERICAN" // 每个节点均可提前行权
)

// IsValid 判断行权方式是否受支持
func (s ExerciseStyle) IsValid() bool {
	return s == ExerciseStyleEuropean || s == ExerciseStyleAmerican
}

// PayoffStyle 收益结构
type PayoffStyle string

const (
	PayoffStyleVanilla         PayoffStyle = "VANILLA"          // 仅依赖到期价格
	PayoffStyleAsianArithmetic PayoffStyle = "ASIAN_ARITHMETIC" // 路径算术平均
	PayoffStyleAsianGeometric  PayoffStyle = "ASIAN_GEOMETRIC"  // 路径几何平均
)

// IsValid 判断收益结构是否受支持
func (s PayoffStyle) IsValid() bool {
	switch s {
	case PayoffStyleVanilla, PayoffStyleAsianArithmetic, PayoffStyleAsianGeometric:
		return true
	}
	return false
}

// PathDependent 收益是否依赖完整价格路径
func (s PayoffStyle) PathDependent() bool {
	return s == PayoffStyleAsianArithmetic || s == PayoffStyleAsianGeometric
}

// PricingModelName 二叉树模型名称，写入定价结果
const PricingModelName = "CoxRossRubinstein"
