package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VoxelTask/VoxSwapSDK/cmd/voxverify/config"
)

var cfgFile string

// rootCmd voxverify 根命令
var rootCmd = &cobra.Command{
	Use:   "voxverify",
	Short: "verify vox swap media content against on-chain hash commitments.",
	Long:  "verify vox swap media content against on-chain hash commitments.",
}

// Execute 解析命令行参数并执行相应的子命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "conf", "", "conf file path (default ~/.voxverify/config.toml)")
}

// initConfig 在命令执行前加载配置文件
func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
}
