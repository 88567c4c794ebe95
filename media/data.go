package media

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/VoxelTask/VoxSwapSDK/evm/eip"
)

// Kind 资产类型
type Kind string

const (
	KindItem   Kind = "item"   // 道具
	KindAvatar Kind = "avatar" // 形象
	KindSpace  Kind = "space"  // 空间
	KindLand   Kind = "land"   // 土地
)

// VerifyPair 一组需要验证的 (URI, 声明哈希)
type VerifyPair struct {
	URI  string
	Hash common.Hash
}

// MediaData 铸造资产时提交的链下内容描述
// 调用方临时构造、立即使用，不携带独立的持久化身份
// 对应链上 mint 入参: 内容 URI + 元数据 URI + 各自的 32 字节哈希承诺
type MediaData struct {
	Kind         Kind
	TokenURI     string      // 内容 URI (仅限 https)
	MetadataURI  string      // 元数据 URI (仅限 https)
	ContentHash  common.Hash // 内容哈希承诺
	MetadataHash common.Hash // 元数据哈希承诺
	// Extra 资产类型附加的 (URI, 哈希) 对，会一并参与内容验证
	Extra []VerifyPair
}

// NewMediaData 构造并校验一份 MediaData
// 任一字段非法时立即拒绝，不保留部分构造状态
func NewMediaData(kind Kind, tokenURI, metadataURI string, contentHash, metadataHash common.Hash, extra ...VerifyPair) (MediaData, error) {
	d := MediaData{
		Kind:         kind,
		TokenURI:     tokenURI,
		MetadataURI:  metadataURI,
		ContentHash:  contentHash,
		MetadataHash: metadataHash,
		Extra:        extra,
	}
	if err := d.Validate(); err != nil {
		return MediaData{}, err
	}
	return d, nil
}

// NewItemData 构造道具资产数据
func NewItemData(tokenURI, metadataURI string, contentHash, metadataHash common.Hash) (MediaData, error) {
	return NewMediaData(KindItem, tokenURI, metadataURI, contentHash, metadataHash)
}

// NewAvatarData 构造形象资产数据
func NewAvatarData(tokenURI, metadataURI string, contentHash, metadataHash common.Hash) (MediaData, error) {
	return NewMediaData(KindAvatar, tokenURI, metadataURI, contentHash, metadataHash)
}

// NewSpaceData 构造空间资产数据
func NewSpaceData(tokenURI, metadataURI string, contentHash, metadataHash common.Hash) (MediaData, error) {
	return NewMediaData(KindSpace, tokenURI, metadataURI, contentHash, metadataHash)
}

// NewLandData 构造土地资产数据
func NewLandData(tokenURI, metadataURI string, contentHash, metadataHash common.Hash) (MediaData, error) {
	return NewMediaData(KindLand, tokenURI, metadataURI, contentHash, metadataHash)
}

// Validate 校验两个 URI 的安全前缀与哈希承诺非空
func (d MediaData) Validate() error {
	if err := ValidateURI(d.TokenURI); err != nil {
		return errors.Wrap(err, "token uri")
	}
	if err := ValidateURI(d.MetadataURI); err != nil {
		return errors.Wrap(err, "metadata uri")
	}
	if err := ValidateBytes32(d.ContentHash.Bytes()); err != nil {
		return errors.Wrap(err, "content hash")
	}
	if err := ValidateBytes32(d.MetadataHash.Bytes()); err != nil {
		return errors.Wrap(err, "metadata hash")
	}
	for _, pair := range d.Extra {
		if err := ValidateURI(pair.URI); err != nil {
			return errors.Wrap(err, "extra uri")
		}
	}
	return nil
}

// Pairs 返回该资产全部需要验证的 (URI, 哈希) 对
func (d MediaData) Pairs() []VerifyPair {
	pairs := []VerifyPair{
		{URI: d.TokenURI, Hash: d.ContentHash},
		{URI: d.MetadataURI, Hash: d.MetadataHash},
	}
	return append(pairs, d.Extra...)
}

// Ask 持有人设置的卖单报价
type Ask struct {
	Currency string   // 计价代币合约地址
	Amount   *big.Int // 报价金额 (代币最小单位)
}

// Validate 校验 Ask 并把币种地址规范化为校验和形式
func (a *Ask) Validate() error {
	currency, err := eip.ValidateAddress(a.Currency)
	if err != nil {
		return errors.Wrap(err, "ask currency")
	}
	a.Currency = currency
	if a.Amount == nil || a.Amount.Sign() < 0 {
		return errors.Wrap(ErrInvalidNumber, "ask amount must be non-negative")
	}
	return nil
}

// Bid 买方提交的出价
type Bid struct {
	Currency    string       // 计价代币合约地址
	Amount      *big.Int     // 出价金额 (代币最小单位)
	Bidder      string       // 出价人地址
	Recipient   string       // 成交后资产接收人地址
	SellOnShare DecimalValue // 转售分成，上限为 100% - 创作者份额
}

// Validate 校验 Bid 的各地址与金额，地址规范化为校验和形式
// SellOnShare 的跨实体上限由 ValidateSellOnShare 在提交时单独检查
func (b *Bid) Validate() error {
	currency, err := eip.ValidateAddress(b.Currency)
	if err != nil {
		return errors.Wrap(err, "bid currency")
	}
	b.Currency = currency

	bidder, err := eip.ValidateAddress(b.Bidder)
	if err != nil {
		return errors.Wrap(err, "bidder")
	}
	b.Bidder = bidder

	recipient, err := eip.ValidateAddress(b.Recipient)
	if err != nil {
		return errors.Wrap(err, "recipient")
	}
	b.Recipient = recipient

	if b.Amount == nil || b.Amount.Sign() < 0 {
		return errors.Wrap(ErrInvalidNumber, "bid amount must be non-negative")
	}
	if !b.SellOnShare.IsValid() {
		return errors.Wrap(ErrInvalidNumber, "sell-on share is uninitialized")
	}
	return nil
}
