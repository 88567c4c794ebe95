package media

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// Decimals 定点数精度: 定点数 = 真实值 * 10^18
	Decimals = 18
	// InputPrecision 外部浮点输入保留的真实小数位数
	// 超出部分直接截断(不做四舍五入)，避免表达虚假精度
	InputPrecision = 4
)

// ErrInvalidNumber 数值输入非法 (负数或非有限数)
var ErrInvalidNumber = errors.New("invalid decimal number")

var (
	// scaleFactor = 10^18
	scaleFactor = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)
	// hundredPercent = 100 * 10^18，份额求和的目标值
	hundredPercent = new(big.Int).Mul(big.NewInt(100), new(big.Int).Set(scaleFactor))
)

// DecimalValue 18位精度的定点数
// 份额与价格的算术运算全部在缩放后的整数域内进行，
// 避免浮点累加无法精确等于 100 的问题
type DecimalValue struct {
	Value *big.Int
}

// NewDecimalValue 从浮点输入构造定点数
// 输入先截断到 4 位小数，再缩放 10^18 倍
// 负数、NaN 与 ±Inf 返回 ErrInvalidNumber
func NewDecimalValue(value float64) (DecimalValue, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return DecimalValue{}, errors.Wrapf(ErrInvalidNumber, "value is not finite: %v", value)
	}
	if value < 0 {
		return DecimalValue{}, errors.Wrapf(ErrInvalidNumber, "value is negative: %v", value)
	}

	// 截断到 4 位小数后整体左移 18 位，结果必为整数
	scaled := decimal.NewFromFloat(value).Truncate(InputPrecision).Shift(Decimals)

	return DecimalValue{Value: scaled.BigInt()}, nil
}

// MustDecimalValue 与 NewDecimalValue 相同，输入非法时 panic
// 仅用于常量份额等必然合法的场景
func MustDecimalValue(value float64) DecimalValue {
	d, err := NewDecimalValue(value)
	if err != nil {
		panic(err)
	}
	return d
}

// HundredPercent 返回 100% 对应的定点数 (100 * 10^18)
func HundredPercent() DecimalValue {
	return DecimalValue{Value: new(big.Int).Set(hundredPercent)}
}

// IsValid 定点数是否处于合法域 (已初始化且非负)
func (d DecimalValue) IsValid() bool {
	return d.Value != nil && d.Value.Sign() >= 0
}

// String 按真实值输出，如 "10.5"
func (d DecimalValue) String() string {
	if d.Value == nil {
		return "<nil>"
	}
	return decimal.NewFromBigInt(d.Value, -Decimals).String()
}
