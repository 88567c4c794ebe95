package eip

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// EIP-55 规范中给出的校验和地址样例
var checksumVectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestToCheckSumAddress(t *testing.T) {
	for _, want := range checksumVectors {
		got, err := ToCheckSumAddress(strings.ToLower(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// 已经是校验和形式的输入保持不变
		got, err = ToCheckSumAddress(want)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestToCheckSumAddressInvalid(t *testing.T) {
	tests := []string{
		"",
		"0x123",
		"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",                    // 缺少 0x 前缀
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed00",                // 超长
		"0xzzzeb6053F3E94C9b9A09f33669435E7Ef1BeAed",                  // 非十六进制字符
		"not-an-address",
	}
	for _, input := range tests {
		_, err := ToCheckSumAddress(input)
		require.Error(t, err, "input: %q", input)
		assert.True(t, errors.Is(err, ErrInvalidAddress))
	}
}

func TestValidateAddress(t *testing.T) {
	// 非规范大小写的合法地址: 接受并返回规范形式
	got, err := ValidateAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)

	// 全大写十六进制同样接受并规范化
	got, err = ValidateAddress("0x" + strings.ToUpper("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)

	_, err = ValidateAddress("0x123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAddress))
}
