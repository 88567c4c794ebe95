package client

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/VoxelTask/VoxSwapSDK/media"
)

// MediaContract 媒体合约的调用边界
// 由 abigen 生成的合约绑定实现，SDK 只负责入参校验与转发，
// 不关心绑定内部的 ABI 编解码与 RPC 传输
type MediaContract interface {
	// Mint 铸造一枚新的代币
	Mint(opts *bind.TransactOpts, data media.MediaData, shares media.BidShares) (*types.Transaction, error)
	// TokenURI 查询代币的内容 URI
	TokenURI(opts *bind.CallOpts, tokenID *big.Int) (string, error)
	// TokenMetadataURI 查询代币的元数据 URI
	TokenMetadataURI(opts *bind.CallOpts, tokenID *big.Int) (string, error)
	// TokenContentHash 查询代币的内容哈希承诺
	TokenContentHash(opts *bind.CallOpts, tokenID *big.Int) ([32]byte, error)
	// TokenMetadataHash 查询代币的元数据哈希承诺
	TokenMetadataHash(opts *bind.CallOpts, tokenID *big.Int) ([32]byte, error)
	// UpdateTokenURI 更新代币的内容 URI
	UpdateTokenURI(opts *bind.TransactOpts, tokenID *big.Int, uri string) (*types.Transaction, error)
	// UpdateTokenMetadataURI 更新代币的元数据 URI
	UpdateTokenMetadataURI(opts *bind.TransactOpts, tokenID *big.Int, uri string) (*types.Transaction, error)
	// Burn 销毁代币
	Burn(opts *bind.TransactOpts, tokenID *big.Int) (*types.Transaction, error)
}

// MarketContract 市场合约的调用边界
// 与媒体合约成对部署，管理报价、出价与分成
type MarketContract interface {
	// BidSharesForToken 查询代币当前的三方分成
	BidSharesForToken(opts *bind.CallOpts, tokenID *big.Int) (media.BidShares, error)
	// SetBidShares 设置代币的三方分成
	SetBidShares(opts *bind.TransactOpts, tokenID *big.Int, shares media.BidShares) (*types.Transaction, error)
	// SetAsk 设置卖单报价
	SetAsk(opts *bind.TransactOpts, tokenID *big.Int, ask media.Ask) (*types.Transaction, error)
	// RemoveAsk 撤销卖单报价
	RemoveAsk(opts *bind.TransactOpts, tokenID *big.Int) (*types.Transaction, error)
	// SetBid 提交出价
	SetBid(opts *bind.TransactOpts, tokenID *big.Int, bid media.Bid) (*types.Transaction, error)
	// RemoveBid 撤销出价
	RemoveBid(opts *bind.TransactOpts, tokenID *big.Int) (*types.Transaction, error)
	// AcceptBid 接受出价
	AcceptBid(opts *bind.TransactOpts, tokenID *big.Int, bid media.Bid) (*types.Transaction, error)
}
