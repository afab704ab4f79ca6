package config

import (
	"fmt"

	"github.com/dep2p/go-eventmanager/pkg/lib/log"
)

// LogConfig 日志配置
//
// 为空时保留环境变量（EVENTMGR_LOG_LEVEL / EVENTMGR_LOG_FORMAT）的设置。
type LogConfig struct {
	// Level 级别配置，格式同 EVENTMGR_LOG_LEVEL
	// 示例: "core/eventbus=debug,info"
	Level string `json:"level,omitempty"`

	// Format 输出格式: text 或 json
	Format string `json:"format,omitempty"`
}

// DefaultLogConfig 返回默认的日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{}
}

// IsSet 是否显式配置了日志
func (c *LogConfig) IsSet() bool {
	return c.Level != "" || c.Format != ""
}

// Validate 验证日志配置
func (c *LogConfig) Validate() error {
	if _, err := log.ParseLevels(c.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if _, err := log.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
