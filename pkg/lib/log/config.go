package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// 环境变量
const (
	// EnvLevel 日志级别，格式: 组件=级别,组件=级别,默认级别
	// 示例: core/eventbus=debug,warn
	EnvLevel = "EVENTMGR_LOG_LEVEL"

	// EnvFormat 日志格式: text 或 json
	EnvFormat = "EVENTMGR_LOG_FORMAT"
)

// Format 日志输出格式
type Format int

const (
	// FormatText 文本格式（默认）
	FormatText Format = iota
	// FormatJSON JSON 格式
	FormatJSON
)

// String 返回格式名称
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// Levels 日志级别配置
type Levels struct {
	// Default 默认级别
	Default slog.Level

	// Components 各组件的级别
	Components map[string]slog.Level
}

// For 获取组件级别，未单独配置时返回 ok=false
func (l Levels) For(component string) (slog.Level, bool) {
	lvl, ok := l.Components[component]
	return lvl, ok
}

// ParseLevels 解析级别配置字符串
//
// 格式: 组件=级别,组件=级别,默认级别；空字符串返回 Info 默认级别。
// 未知级别名返回错误。
func ParseLevels(spec string) (Levels, error) {
	levels := Levels{
		Default:    slog.LevelInfo,
		Components: make(map[string]slog.Level),
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if component, name, ok := strings.Cut(part, "="); ok {
			lvl, err := ParseLevel(name)
			if err != nil {
				return Levels{}, err
			}
			levels.Components[strings.TrimSpace(component)] = lvl
			continue
		}

		lvl, err := ParseLevel(part)
		if err != nil {
			return Levels{}, err
		}
		levels.Default = lvl
	}

	return levels, nil
}

// ParseLevel 解析单个级别名称
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// ParseFormat 解析格式名称
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q", name)
	}
}

// fromEnv 从环境变量读取配置，无效值回退到默认值
func fromEnv() (Levels, Format) {
	levels, err := ParseLevels(os.Getenv(EnvLevel))
	if err != nil {
		levels, _ = ParseLevels("")
	}
	format, err := ParseFormat(os.Getenv(EnvFormat))
	if err != nil {
		format = FormatText
	}
	return levels, format
}
