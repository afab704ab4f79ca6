package config

import "fmt"

// BusConfig 事件总线配置
type BusConfig struct {
	// SlowDispatchThreshold 单次发布耗时超过该值时输出告警，0 表示关闭
	// 默认值: 0
	SlowDispatchThreshold Duration `json:"slow_dispatch_threshold"`

	// TraceDispatch 每次发布输出一条 debug 日志
	// 默认值: false
	TraceDispatch bool `json:"trace_dispatch"`
}

// DefaultBusConfig 返回默认的总线配置
func DefaultBusConfig() BusConfig {
	return BusConfig{}
}

// Validate 验证总线配置
func (c *BusConfig) Validate() error {
	if c.SlowDispatchThreshold < 0 {
		return fmt.Errorf("bus: slow_dispatch_threshold must be >= 0, got %s", c.SlowDispatchThreshold)
	}
	return nil
}
