package media

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// BidShares 成交金额的三方分成比例
// Creator: 创作者, Owner: 当前持有人, PrevOwner: 上一任持有人
type BidShares struct {
	Creator   DecimalValue
	Owner     DecimalValue
	PrevOwner DecimalValue
}

// BidShareSumError 三方份额之和不等于 100% 时返回
// 携带实际值与期望值，便于调用方定位问题
type BidShareSumError struct {
	Actual   *big.Int
	Expected *big.Int
}

func (e *BidShareSumError) Error() string {
	return fmt.Sprintf("bid shares do not sum to 100%%: actual %s, expected %s", e.Actual, e.Expected)
}

// NewBidShares 从浮点百分比构造 BidShares 并立即校验求和不变量
func NewBidShares(creator, owner, prevOwner float64) (BidShares, error) {
	c, err := NewDecimalValue(creator)
	if err != nil {
		return BidShares{}, errors.Wrap(err, "invalid creator share")
	}
	o, err := NewDecimalValue(owner)
	if err != nil {
		return BidShares{}, errors.Wrap(err, "invalid owner share")
	}
	p, err := NewDecimalValue(prevOwner)
	if err != nil {
		return BidShares{}, errors.Wrap(err, "invalid prev owner share")
	}

	shares := BidShares{Creator: c, Owner: o, PrevOwner: p}
	if err := shares.Validate(); err != nil {
		return BidShares{}, err
	}
	return shares, nil
}

// Validate 校验求和不变量: creator + owner + prevOwner == 100 * 10^18
// 定点整数域内的运算是精确的，这里是严格相等，不允许任何容差
func (b BidShares) Validate() error {
	if !b.Creator.IsValid() || !b.Owner.IsValid() || !b.PrevOwner.IsValid() {
		return errors.Wrap(ErrInvalidNumber, "bid shares contain uninitialized value")
	}

	sum := new(big.Int).Add(b.Creator.Value, b.Owner.Value)
	sum.Add(sum, b.PrevOwner.Value)

	if sum.Cmp(hundredPercent) != 0 {
		return &BidShareSumError{
			Actual:   sum,
			Expected: new(big.Int).Set(hundredPercent),
		}
	}
	return nil
}

// ErrInvalidSellOnShare 出价的转售分成超过了允许的上限
var ErrInvalidSellOnShare = errors.New("sell-on share exceeds maximum allowed")

// ValidateSellOnShare 校验出价中的转售分成
// 约束: sellOnShare <= 100% - 该资产当前的创作者份额
// 这是跨实体不变量，需要在出价提交时动态检查，而非构造时
func ValidateSellOnShare(sellOn, creatorShare DecimalValue) error {
	if !sellOn.IsValid() || !creatorShare.IsValid() {
		return errors.Wrap(ErrInvalidNumber, "sell-on share contains uninitialized value")
	}
	max := new(big.Int).Sub(hundredPercent, creatorShare.Value)
	if sellOn.Value.Cmp(max) > 0 {
		return errors.Wrapf(ErrInvalidSellOnShare, "sell-on share %s, max %s",
			sellOn, DecimalValue{Value: max})
	}
	return nil
}
