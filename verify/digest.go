package verify

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Digest 计算内容的 SHA-256 摘要
// 返回 0x 前缀的小写十六进制串，相同输入的结果恒定
// 既用于创建资产时预先计算哈希承诺，也用于校验拉取到的内容
func Digest(data []byte) string {
	h := sha256.Sum256(data)
	return hexutil.Encode(h[:])
}

// DigestHash 与 Digest 相同，但返回 32 字节哈希类型
// 便于直接填入 MediaData 的哈希承诺字段
func DigestHash(data []byte) common.Hash {
	return common.Hash(sha256.Sum256(data))
}
