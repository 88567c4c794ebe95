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

// marketAddress 按资产类型从地址集合中取出市场合约地址
func marketAddress(addrs chain.ContractAddresses, kind media.Kind) (string, error) {
	var addr string
	switch kind {
	case media.KindItem:
		addr = addrs.ItemMarket
	case media.KindAvatar:
		addr = addrs.AvatarMarket
	case media.KindSpace:
		addr = addrs.SpaceMarket
	case media.KindLand:
		addr = addrs.LandMarket
	default:
		return "", errors.Errorf("unknown media kind: %s", kind)
	}
	if addr == "" {
		return "", errors.Wrapf(ErrContractNotDeployed, "%s market", kind)
	}
	return addr, nil
}

// MarketClient 市场合约的客户端封装
// 报价、出价与分成设置在转发之前完成全部校验，
// 包括出价转售分成对创作者份额的动态上限检查
type MarketClient struct {
	kind     media.Kind
	chainID  int64
	address  common.Address
	contract MarketContract
	opts     *bind.TransactOpts // nil 表示只读客户端
}

// NewMarketClient 构造市场客户端
// opts 传 nil 创建只读客户端，状态变更方法会返回 ErrReadOnlyClient
func NewMarketClient(book *chain.AddressBook, chainID int64, kind media.Kind, contract MarketContract, opts *bind.TransactOpts) (*MarketClient, error) {
	addrs, err := book.Addresses(chainID)
	if err != nil {
		return nil, err
	}
	addr, err := marketAddress(addrs, kind)
	if err != nil {
		return nil, err
	}
	return &MarketClient{
		kind:     kind,
		chainID:  chainID,
		address:  common.HexToAddress(addr),
		contract: contract,
		opts:     opts,
	}, nil
}

// Address 返回已解析的合约地址
func (c *MarketClient) Address() common.Address {
	return c.address
}

// ReadOnly 客户端是否为只读模式
func (c *MarketClient) ReadOnly() bool {
	return c.opts == nil
}

func (c *MarketClient) ensureNotReadOnly() error {
	if c.opts == nil {
		return ErrReadOnlyClient
	}
	return nil
}

// BidSharesForToken 查询代币当前的三方分成
func (c *MarketClient) BidSharesForToken(ctx context.Context, tokenID *big.Int) (media.BidShares, error) {
	return c.contract.BidSharesForToken(&bind.CallOpts{Context: ctx}, tokenID)
}

// SetBidShares 校验求和不变量后设置代币分成
func (c *MarketClient) SetBidShares(ctx context.Context, tokenID *big.Int, shares media.BidShares) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	if err := shares.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bid shares")
	}
	return c.contract.SetBidShares(c.opts, tokenID, shares)
}

// SetAsk 校验报价后设置卖单
func (c *MarketClient) SetAsk(ctx context.Context, tokenID *big.Int, ask media.Ask) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	if err := ask.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ask")
	}
	return c.contract.SetAsk(c.opts, tokenID, ask)
}

// RemoveAsk 撤销卖单
func (c *MarketClient) RemoveAsk(ctx context.Context, tokenID *big.Int) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	return c.contract.RemoveAsk(c.opts, tokenID)
}

// SetBid 校验出价后提交
// 除静态校验外，还会查询该代币当前的创作者份额，
// 动态检查 sellOnShare <= 100% - creatorShare
func (c *MarketClient) SetBid(ctx context.Context, tokenID *big.Int, bid media.Bid) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	if err := bid.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bid")
	}

	shares, err := c.BidSharesForToken(ctx, tokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed on query bid shares")
	}
	if err := media.ValidateSellOnShare(bid.SellOnShare, shares.Creator); err != nil {
		return nil, err
	}

	tx, err := c.contract.SetBid(c.opts, tokenID, bid)
	if err != nil {
		return nil, errors.Wrap(err, "failed on set bid")
	}

	xzap.WithContext(ctx).Info("bid submitted",
		zap.String("kind", string(c.kind)),
		zap.Int64("chain_id", c.chainID),
		zap.String("token_id", tokenID.String()),
		zap.String("tx_hash", tx.Hash().Hex()))
	return tx, nil
}

// RemoveBid 撤销出价
func (c *MarketClient) RemoveBid(ctx context.Context, tokenID *big.Int) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	return c.contract.RemoveBid(c.opts, tokenID)
}

// AcceptBid 接受出价
func (c *MarketClient) AcceptBid(ctx context.Context, tokenID *big.Int, bid media.Bid) (*types.Transaction, error) {
	if err := c.ensureNotReadOnly(); err != nil {
		return nil, err
	}
	if err := bid.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bid")
	}
	return c.contract.AcceptBid(c.opts, tokenID, bid)
}
