package media

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	// SecureURIPrefix 所有链下内容 URI 必须使用的安全传输前缀
	SecureURIPrefix = "https://"
	// HashLength 内容哈希的字节长度
	HashLength = 32
)

var (
	// ErrInsecureURI URI 未使用 https 前缀
	ErrInsecureURI = errors.New("uri must begin with https://")
	// ErrInvalidHashLength 哈希长度不是 32 字节
	ErrInvalidHashLength = errors.New("hash must be exactly 32 bytes")
)

// ValidateURI 校验内容 URI 必须以 https:// 开头
func ValidateURI(uri string) error {
	if !strings.HasPrefix(uri, SecureURIPrefix) {
		return errors.Wrapf(ErrInsecureURI, "uri: %s", uri)
	}
	return nil
}

// ValidateBytes32 校验原始字节长度必须正好为 32
func ValidateBytes32(value []byte) error {
	if len(value) != HashLength {
		return errors.Wrapf(ErrInvalidHashLength, "got %d bytes", len(value))
	}
	return nil
}

// HexToBytes32 解析 0x 前缀(可省略)的十六进制哈希字符串
// 规范化为原始字节后做长度校验
func HexToBytes32(s string) (common.Hash, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	if err != nil {
		return common.Hash{}, errors.Wrapf(ErrInvalidHashLength, "not a hex string: %s", s)
	}
	if err := ValidateBytes32(raw); err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(raw), nil
}
