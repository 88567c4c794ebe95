package chain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
const testAddrChecksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func TestName(t *testing.T) {
	name, err := Name(EthChainID)
	require.NoError(t, err)
	assert.Equal(t, "eth", name)

	_, err = Name(999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedChain))
}

func TestNewAddressBook(t *testing.T) {
	book, err := NewAddressBook(map[int64]ContractAddresses{
		SepoliaChainID: {
			ItemMedia:  testAddr,
			ItemMarket: testAddr,
		},
	})
	require.NoError(t, err)

	addrs, err := book.Addresses(SepoliaChainID)
	require.NoError(t, err)
	// 地址在构造时被规范化为校验和形式
	assert.Equal(t, testAddrChecksummed, addrs.ItemMedia)
	// 未配置的合约留空
	assert.Empty(t, addrs.LandMedia)

	_, err = book.Addresses(OptimismChainID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedChain))
}

func TestNewAddressBookRejectsUnknownChain(t *testing.T) {
	_, err := NewAddressBook(map[int64]ContractAddresses{
		999: {ItemMedia: testAddr},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedChain))
}

func TestNewAddressBookRejectsMalformedAddress(t *testing.T) {
	_, err := NewAddressBook(map[int64]ContractAddresses{
		EthChainID: {ItemMedia: "0x123"},
	})
	require.Error(t, err)
}

func TestLoadAddressBook(t *testing.T) {
	content := `
[chains.11155111]
item_media = "` + testAddr + `"
item_market = "` + testAddr + `"

[chains.1]
space_media = "` + testAddr + `"
`
	path := filepath.Join(t.TempDir(), "addressbook.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	book, err := LoadAddressBook(path)
	require.NoError(t, err)

	addrs, err := book.Addresses(SepoliaChainID)
	require.NoError(t, err)
	assert.Equal(t, testAddrChecksummed, addrs.ItemMarket)

	addrs, err = book.Addresses(EthChainID)
	require.NoError(t, err)
	assert.Equal(t, testAddrChecksummed, addrs.SpaceMedia)
}

func TestLoadAddressBookMissingFile(t *testing.T) {
	_, err := LoadAddressBook(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
