// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Bus.SlowDispatchThreshold = config.Duration(50 * time.Millisecond)
//	cfg.Metrics.Namespace = "game"
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import "go.uber.org/multierr"

// Config 是事件管理器的完整配置结构
//
// 配置按照功能模块组织：
//   - Bus: 事件总线（慢发布告警、分发追踪）
//   - Metrics: Prometheus 指标
//   - Log: 日志级别与格式
type Config struct {
	// Bus 事件总线配置
	Bus BusConfig `json:"bus"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`

	// Log 日志配置
	Log LogConfig `json:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Bus:     DefaultBusConfig(),
		Metrics: DefaultMetricsConfig(),
		Log:     DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
//
// 汇总所有子配置的错误一并返回。
func (c *Config) Validate() error {
	var err error
	err = multierr.Append(err, c.Bus.Validate())
	err = multierr.Append(err, c.Metrics.Validate())
	err = multierr.Append(err, c.Log.Validate())
	return err
}
