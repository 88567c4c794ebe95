package chain

import "github.com/pkg/errors"

// 支持的链 ID
const (
	EthChainID      int64 = 1
	OptimismChainID int64 = 10
	SepoliaChainID  int64 = 11155111
)

// ErrUnsupportedChain 链 ID 不在支持列表中
var ErrUnsupportedChain = errors.New("unsupported chain id")

// chainIDToName 链 ID 到链名称的映射
// 用于将数字 ID 转换为人类可读的字符串标识
var chainIDToName = map[int64]string{
	EthChainID:      "eth",
	OptimismChainID: "optimism",
	SepoliaChainID:  "sepolia",
}

// Name 根据链 ID 返回链名称
func Name(chainID int64) (string, error) {
	name, ok := chainIDToName[chainID]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedChain, "chain id: %d", chainID)
	}
	return name, nil
}

// Supported 判断链 ID 是否受支持
func Supported(chainID int64) bool {
	_, ok := chainIDToName[chainID]
	return ok
}
