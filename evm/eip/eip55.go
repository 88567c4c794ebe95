package eip

import (
	"context"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/VoxelTask/VoxSwapSDK/logger/xzap"
)

// ErrInvalidAddress 地址格式不合法
var ErrInvalidAddress = errors.New("invalid ethereum address")

// 以太坊地址正则: 0x开头,后接40位16进制字符
var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// ToCheckSumAddress 将以太坊地址转换为校验和格式 (Checksum Address)
// 遵循 EIP-55 规范: 对地址的小写形式做 Keccak-256 哈希,
// 根据哈希值对应的半字节决定每个字母字符的大小写
func ToCheckSumAddress(address string) (string, error) {
	if !addressPattern.MatchString(address) {
		return "", errors.Wrapf(ErrInvalidAddress, "address: %s", address)
	}

	addrLowerStr := strings.ToLower(strings.TrimPrefix(address, "0x"))
	addrBytes := []byte(addrLowerStr)
	hash := crypto.Keccak256([]byte(addrLowerStr))

	for i, e := range addrLowerStr {
		// 数字字符不区分大小写，跳过
		if e >= '0' && e <= '9' {
			continue
		}
		// 一个哈希字节对应地址中的两个十六进制字符
		// i%2==0 取字节高4位, i%2==1 取低4位, 该半字节 >= 8 时转为大写
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			addrBytes[i] -= 32 // ASCII 小写转大写
		}
	}

	return "0x" + string(addrBytes), nil
}

// ValidateAddress 校验地址的合法性并返回规范的校验和形式
// 语法非法的输入返回 ErrInvalidAddress;
// 语法合法但大小写不符合 EIP-55 规范的输入会被接受，只打印一条告警日志
func ValidateAddress(address string) (string, error) {
	checksummed, err := ToCheckSumAddress(address)
	if err != nil {
		return "", err
	}
	if address != checksummed {
		xzap.WithContext(context.Background()).Warn("address is not checksummed",
			zap.String("address", address), zap.String("checksummed", checksummed))
	}
	return checksummed, nil
}
