package xzap

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/VoxelTask/VoxSwapSDK/logger"
)

// Xzap 是对 zap.Logger 的一层薄封装
// 提供 WithContext 方式获取带链路追踪字段的 logger
type Xzap struct {
	l *zap.Logger
}

type ctxKey struct{}

var (
	mu     sync.RWMutex
	global *Xzap
)

// SetUp 根据配置初始化全局日志实例
// mode 为 console 时输出到标准输出，为 file 时输出到带滚动切割的日志文件
func SetUp(c logger.LogConf) (*Xzap, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(c.Level)); err != nil && c.Level != "" {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var core zapcore.Core
	switch c.Mode {
	case "file":
		// file 模式下使用 lumberjack 做日志滚动
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(c.Path, c.ServiceName+".log"),
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.KeepDays,
			Compress:   c.Compress,
		}
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), level)
	default:
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level)
	}

	// AddCallerSkip(1) 跳过 Xzap 封装层，使 caller 指向真实调用点
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	if c.ServiceName != "" {
		l = l.With(zap.String("service", c.ServiceName))
	}

	x := &Xzap{l: l}
	mu.Lock()
	global = x
	mu.Unlock()

	return x, nil
}

// WithContext 获取当前全局 logger
// 如果 ctx 中携带 trace id，会作为固定字段附加到日志上
// 未调用 SetUp 时退化为一个默认的控制台 logger，避免调用方空指针
func WithContext(ctx context.Context) *Xzap {
	mu.RLock()
	x := global
	mu.RUnlock()
	if x == nil {
		x, _ = SetUp(logger.DefaultConf(""))
	}
	if ctx != nil {
		if traceID, ok := ctx.Value(ctxKey{}).(string); ok && traceID != "" {
			return &Xzap{l: x.l.With(zap.String("trace_id", traceID))}
		}
	}
	return x
}

// ContextWithTraceID 把 trace id 写入 ctx，供 WithContext 读取
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, traceID)
}

func (x *Xzap) Debug(msg string, fields ...zap.Field) {
	x.l.Debug(msg, fields...)
}

func (x *Xzap) Info(msg string, fields ...zap.Field) {
	x.l.Info(msg, fields...)
}

func (x *Xzap) Warn(msg string, fields ...zap.Field) {
	x.l.Warn(msg, fields...)
}

func (x *Xzap) Error(msg string, fields ...zap.Field) {
	x.l.Error(msg, fields...)
}

// Sync 刷新缓冲的日志条目
func (x *Xzap) Sync() error {
	return x.l.Sync()
}
