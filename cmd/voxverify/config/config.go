package config

import (
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/VoxelTask/VoxSwapSDK/logger"
)

// Config 定义了 voxverify 工具的全局配置结构
type Config struct {
	Log        *logger.LogConf `toml:"log" mapstructure:"log" json:"log"`                               // 日志配置
	Verify     VerifyCfg       `toml:"verify" mapstructure:"verify" json:"verify"`                      // 验证相关配置
	ChainCfg   ChainCfg        `toml:"chain_cfg" mapstructure:"chain_cfg" json:"chain_cfg"`             // 链信息配置
	AddressCfg AddressCfg      `toml:"address_cfg" mapstructure:"address_cfg" json:"address_cfg"`       // 合约地址簿配置
	ProjectCfg ProjectCfg      `toml:"project_cfg" mapstructure:"project_cfg" json:"project_cfg"`       // 项目名称配置
}

// VerifyCfg 内容验证配置
type VerifyCfg struct {
	TimeoutSeconds int64 `toml:"timeout_seconds" mapstructure:"timeout_seconds" json:"timeout_seconds"` // 单次拉取超时 (秒)
}

// ChainCfg 定义链的基本信息
type ChainCfg struct {
	Name string `toml:"name" mapstructure:"name" json:"name"` // 链名称 (如: eth, sepolia)
	ID   int64  `toml:"id" mapstructure:"id" json:"id"`       // Chain ID
}

// AddressCfg 定义合约地址簿来源
type AddressCfg struct {
	BookPath string `toml:"book_path" mapstructure:"book_path" json:"book_path"` // 地址簿 toml 文件路径
}

// ProjectCfg 定义项目配置
type ProjectCfg struct {
	Name string `toml:"name" mapstructure:"name" json:"name"` // 项目名称
}

// DefaultConfigPath 返回默认配置文件路径 ~/.voxverify/config.toml
func DefaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(home, ".voxverify", "config.toml")
}

// UnmarshalConfig 加载并解析指定路径的配置文件
// 支持 VOX_ 前缀的环境变量覆盖，如 VOX_VERIFY_TIMEOUT_SECONDS
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("VOX")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}

	return &c, nil
}
