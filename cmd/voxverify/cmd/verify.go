package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/threading"
	"go.uber.org/zap"

	"github.com/VoxelTask/VoxSwapSDK/cmd/voxverify/config"
	"github.com/VoxelTask/VoxSwapSDK/logger/xzap"
	"github.com/VoxelTask/VoxSwapSDK/media"
	"github.com/VoxelTask/VoxSwapSDK/verify"
)

var (
	flagKind         string
	flagTokenURI     string
	flagContentHash  string
	flagMetadataURI  string
	flagMetadataHash string
)

// VerifyCmd 定义了 "verify" 子命令
// 拉取给定资产的内容与元数据并与声明哈希比对
var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "fetch media content and compare against declared hashes.",
	Long:  "fetch media content and compare against declared hashes.",
	Run: func(cmd *cobra.Command, args []string) {
		wg := &sync.WaitGroup{}
		wg.Add(1)

		ctx := context.Background()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// 退出信号通知 chan，用于接收执行过程中的错误或完成信号
		onVerifyExit := make(chan error, 1)

		threading.GoSafe(func() {
			defer wg.Done()

			// 1. 读取和解析配置文件
			cfg, err := config.UnmarshalConfig(cfgFile)
			if err != nil {
				xzap.WithContext(ctx).Error("Failed to unmarshal config", zap.Error(err))
				onVerifyExit <- err
				return
			}

			// 2. 初始化日志模块
			if cfg.Log != nil {
				if _, err := xzap.SetUp(*cfg.Log); err != nil {
					onVerifyExit <- err
					return
				}
			}

			// 3. 组装待验证的资产数据
			contentHash, err := media.HexToBytes32(flagContentHash)
			if err != nil {
				xzap.WithContext(ctx).Error("Invalid content hash", zap.Error(err))
				onVerifyExit <- err
				return
			}
			metadataHash, err := media.HexToBytes32(flagMetadataHash)
			if err != nil {
				xzap.WithContext(ctx).Error("Invalid metadata hash", zap.Error(err))
				onVerifyExit <- err
				return
			}
			data, err := media.NewMediaData(media.Kind(flagKind), flagTokenURI, flagMetadataURI, contentHash, metadataHash)
			if err != nil {
				xzap.WithContext(ctx).Error("Invalid media data", zap.Error(err))
				onVerifyExit <- err
				return
			}

			// 4. 执行内容验证
			timeout := time.Duration(cfg.Verify.TimeoutSeconds) * time.Second
			verified, err := verify.New().VerifyMediaData(ctx, data, timeout)
			if err != nil {
				xzap.WithContext(ctx).Error("Failed to verify media data", zap.Error(err))
				onVerifyExit <- err
				return
			}

			xzap.WithContext(ctx).Info("verify finished", zap.Bool("verified", verified))
			onVerifyExit <- nil
		})

		// 信号通知 chan，用于接收系统信号
		onSignal := make(chan os.Signal, 1)
		signal.Notify(onSignal, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-onSignal:
			switch sig {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM:
				cancel()
				xzap.WithContext(ctx).Info("Exit by signal", zap.String("signal", sig.String()))
			}
		case err := <-onVerifyExit:
			cancel()
			if err != nil {
				xzap.WithContext(ctx).Error("Exit by error", zap.Error(err))
			}
		}

		wg.Wait()
	},
}

func init() {
	VerifyCmd.Flags().StringVar(&flagKind, "kind", string(media.KindItem), "media kind (item, avatar, space, land)")
	VerifyCmd.Flags().StringVar(&flagTokenURI, "token-uri", "", "content uri (https only)")
	VerifyCmd.Flags().StringVar(&flagContentHash, "content-hash", "", "declared content hash (0x-prefixed hex)")
	VerifyCmd.Flags().StringVar(&flagMetadataURI, "metadata-uri", "", "metadata uri (https only)")
	VerifyCmd.Flags().StringVar(&flagMetadataHash, "metadata-hash", "", "declared metadata hash (0x-prefixed hex)")

	rootCmd.AddCommand(VerifyCmd)
}
