package client

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/VoxelTask/VoxSwapSDK/chain"
	"github.com/VoxelTask/VoxSwapSDK/logger/xzap"
	"github.com/VoxelTask/VoxSwapSDK/media"
)

// ErrReadOnlyClient 未附加签名者的只读客户端拒绝状态变更操作
var ErrReadOnlyClient = errors.New("client is read-only: no signer attached")

// ErrContractNotDeployed 地址簿中该链未配置对应合约
var ErrContractNotDeployed = errors.New("contract not deployed on chain")

// mediaAddress 按资产类型从地址集合中取出媒体合约地址
func mediaAddress(addrs chain.ContractAddresses, kind media.Kind) (string, error) {
	var addr string
	switch kind {
	case media.KindItem:
		addr = addrs.ItemMedia
	case media.KindAvatar:
		addr = addrs.AvatarMedia
	case media.KindSpace:
		addr = addrs.SpaceMedia
	case media.KindLand:
		addr = addrs.LandMedia
	default:
		return "", errors.Errorf("unknown media kind: %s", kind)
	}
	if addr == "" {
		return "", errors.Wrapf(ErrContractNotDeployed, "%s media", kind)
	}
	return addr, nil
}

// MediaClient 媒体合约的客户端封装
// 负责按链解析合约地址、持有签名者(或只读模式)，
// 并在转发到合约绑定之前完成全部入参校验
type MediaClient struct {
	kind     media.Kind
	chainID  int64
	address  common.Address
	contract MediaContract
	opts     *bind.TransactOpts // nil 表示只读客户端
}

// NewMediaClient 构造媒体客户端
// opts 传 nil 创建只读客户端，状态变更方法会返回 ErrReadOnlyClient
func NewMediaClient(book *chain.AddressBook, chainID int64, kind media.Kind, contract MediaContract, opts *bind.TransactOpts) (*MediaClient, error) {
	addrs, err := book.Addresses(chainID)
	if err != nil {
		return nil, err
	}
	addr, err := mediaAddress(addrs, kind)
	if err != nil {
		return nil, err
	}
	return &MediaClient{
		kind:     kind,
		chainID:  chainID,
		address:  common.HexToAddress(addr),
		contract: contract,
		opts:     opts,
	}, nil
}

// Address 返回已解析的合约地址
func (c *MediaClient) Address() common.Address {
	return c.address
}

// ReadOnly 客户端是否为只读模式
func (c *MediaClient) ReadOnly() bool {
	return c.opts == nil
}

func (c *MediaClient) ensureNotReadOnly() error {
	if c.opts == nil {
		return ErrReadOnlyClient
	}
	return nil
}

// Mint 校验资产数据与分成后转发铸造交易
func (c *MediaClient) Mint(ctx context.Context, data media.MediaData, shares media.BidShares) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	if data.Kind != c.kind {
		return nil, errors.Errorf("media data kind %s does not match client kind %s", data.Kind, c.kind)
	}
	if err := data.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid media data")
	}
	if err := shares.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bid shares")
	}

	tx, err := c.contract.Mint(c.opts, data, shares)
	if err != nil {
		return nil, errors.Wrap(err, "failed on mint")
	}

	xzap.WithContext(ctx).Info("mint submitted",
		zap.String("kind", string(c.kind)),
		zap.Int64("chain_id", c.chainID),
		zap.String("tx_hash", tx.Hash().Hex()))
	return tx, nil
}

// TokenURI 查询代币的内容 URI
func (c *MediaClient) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	return c.contract.TokenURI(&bind.CallOpts{Context: ctx}, tokenID)
}

// TokenMetadataURI 查询代币的元数据 URI
func (c *MediaClient) TokenMetadataURI(ctx context.Context, tokenID *big.Int) (string, error) {
	return c.contract.TokenMetadataURI(&bind.CallOpts{Context: ctx}, tokenID)
}

// TokenContentHash 查询代币的内容哈希承诺
func (c *MediaClient) TokenContentHash(ctx context.Context, tokenID *big.Int) (common.Hash, error) {
	h, err := c.contract.TokenContentHash(&bind.CallOpts{Context: ctx}, tokenID)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(h), nil
}

// TokenMetadataHash 查询代币的元数据哈希承诺
func (c *MediaClient) TokenMetadataHash(ctx context.Context, tokenID *big.Int) (common.Hash, error) {
	h, err := c.contract.TokenMetadataHash(&bind.CallOpts{Context: ctx}, tokenID)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(h), nil
}

// UpdateTokenURI 校验后更新代币内容 URI
func (c *MediaClient) UpdateTokenURI(ctx context.Context, tokenID *big.Int, uri string) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	if err := media.ValidateURI(uri); err != nil {
		return nil, err
	}
	return c.contract.UpdateTokenURI(c.opts, tokenID, uri)
}

// UpdateTokenMetadataURI 校验后更新代币元数据 URI
func (c *MediaClient) UpdateTokenMetadataURI(ctx context.Context, tokenID *big.Int, uri string) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	if err := media.ValidateURI(uri); err != nil {
		return nil, err
	}
	return c.contract.UpdateTokenMetadataURI(c.opts, tokenID, uri)
}

// Burn 销毁代币
func (c *MediaClient) Burn(ctx context.Context, tokenID *big.Int) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	return c.contract.Burn(c.opts, tokenID)
}
