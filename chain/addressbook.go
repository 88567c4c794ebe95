package chain

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/VoxelTask/VoxSwapSDK/evm/eip"
)

// ContractAddresses 单条链上已部署合约的地址集合
// 每种资产类型对应一个媒体合约与一个配对的市场合约
type ContractAddresses struct {
	ItemMedia    string `toml:"item_media" mapstructure:"item_media" json:"item_media"`
	ItemMarket   string `toml:"item_market" mapstructure:"item_market" json:"item_market"`
	AvatarMedia  string `toml:"avatar_media" mapstructure:"avatar_media" json:"avatar_media"`
	AvatarMarket string `toml:"avatar_market" mapstructure:"avatar_market" json:"avatar_market"`
	SpaceMedia   string `toml:"space_media" mapstructure:"space_media" json:"space_media"`
	SpaceMarket  string `toml:"space_market" mapstructure:"space_market" json:"space_market"`
	LandMedia    string `toml:"land_media" mapstructure:"land_media" json:"land_media"`
	LandMarket   string `toml:"land_market" mapstructure:"land_market" json:"land_market"`
}

// Validate 校验所有已填写的地址并规范化为校验和形式
// 允许留空: 某条链上未部署的合约不强制配置
func (c *ContractAddresses) Validate() error {
	fields := []*string{
		&c.ItemMedia, &c.ItemMarket,
		&c.AvatarMedia, &c.AvatarMarket,
		&c.SpaceMedia, &c.SpaceMarket,
		&c.LandMedia, &c.LandMarket,
	}
	for _, field := range fields {
		if *field == "" {
			continue
		}
		checksummed, err := eip.ValidateAddress(*field)
		if err != nil {
			return err
		}
		*field = checksummed
	}
	return nil
}

// AddressBook 链 ID -> 合约地址集合
// 原来以全局注册表形式存在的地址查找表，这里改为显式构造后注入，
// 避免验证与客户端层对进程级状态的隐式依赖
type AddressBook struct {
	entries map[int64]ContractAddresses
}

// NewAddressBook 从内存映射构造地址簿，构造时逐条校验
func NewAddressBook(entries map[int64]ContractAddresses) (*AddressBook, error) {
	book := &AddressBook{entries: make(map[int64]ContractAddresses, len(entries))}
	for chainID, addrs := range entries {
		if !Supported(chainID) {
			return nil, errors.Wrapf(ErrUnsupportedChain, "chain id: %d", chainID)
		}
		if err := addrs.Validate(); err != nil {
			return nil, errors.Wrapf(err, "chain %d", chainID)
		}
		book.entries[chainID] = addrs
	}
	return book, nil
}

// addressBookConfig toml 配置文件的顶层结构
// 形如:
//
//	[chains.1]
//	item_media = "0x..."
//	item_market = "0x..."
type addressBookConfig struct {
	Chains map[string]ContractAddresses `toml:"chains" mapstructure:"chains" json:"chains"`
}

// LoadAddressBook 从 toml 配置文件加载地址簿
func LoadAddressBook(configFilePath string) (*AddressBook, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed on read address book config")
	}

	var cfg addressBookConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal address book config")
	}

	entries := make(map[int64]ContractAddresses, len(cfg.Chains))
	for key, addrs := range cfg.Chains {
		chainID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid chain id key in address book: %s", key)
		}
		entries[chainID] = addrs
	}

	return NewAddressBook(entries)
}

// Addresses 查询指定链的合约地址集合
func (b *AddressBook) Addresses(chainID int64) (ContractAddresses, error) {
	addrs, ok := b.entries[chainID]
	if !ok {
		return ContractAddresses{}, errors.Wrapf(ErrUnsupportedChain, "no addresses for chain id: %d", chainID)
	}
	return addrs, nil
}
