package config

import (
	"fmt"
	"regexp"
)

// metricNameRe Prometheus 指标名片段
var metricNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用 Prometheus 指标
	// 默认值: true
	Enabled bool `json:"enabled"`

	// Namespace 指标命名空间
	// 默认值: "eventmanager"
	Namespace string `json:"namespace"`

	// Subsystem 指标子系统
	// 默认值: "bus"
	Subsystem string `json:"subsystem"`
}

// DefaultMetricsConfig 返回默认的指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: "eventmanager",
		Subsystem: "bus",
	}
}

// Validate 验证指标配置
func (c *MetricsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Namespace != "" && !metricNameRe.MatchString(c.Namespace) {
		return fmt.Errorf("metrics: invalid namespace %q", c.Namespace)
	}
	if c.Subsystem != "" && !metricNameRe.MatchString(c.Subsystem) {
		return fmt.Errorf("metrics: invalid subsystem %q", c.Subsystem)
	}
	return nil
}
