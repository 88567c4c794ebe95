package logger

// LogConf 日志配置结构
// 通过 viper 从 toml 配置文件或环境变量中加载
type LogConf struct {
	ServiceName string `toml:"service_name" mapstructure:"service_name" json:"service_name"` // 服务名称，会作为固定字段写入每条日志
	Mode        string `toml:"mode" mapstructure:"mode" json:"mode"`                         // 输出模式 (console, file)
	Path        string `toml:"path" mapstructure:"path" json:"path"`                         // 日志文件目录 (file 模式下生效)
	Level       string `toml:"level" mapstructure:"level" json:"level"`                      // 日志级别 (debug, info, warn, error)
	Compress    bool   `toml:"compress" mapstructure:"compress" json:"compress"`             // 是否压缩历史日志
	KeepDays    int    `toml:"keep_days" mapstructure:"keep_days" json:"keep_days"`          // 历史日志保留天数
	MaxSize     int    `toml:"max_size" mapstructure:"max_size" json:"max_size"`             // 单个日志文件最大体积 (MB)
	MaxBackups  int    `toml:"max_backups" mapstructure:"max_backups" json:"max_backups"`    // 历史日志文件最大数量
}

// DefaultConf 返回一份默认的控制台日志配置
func DefaultConf(serviceName string) LogConf {
	return LogConf{
		ServiceName: serviceName,
		Mode:        "console",
		Level:       "info",
	}
}
