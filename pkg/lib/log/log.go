// Package log 提供事件管理器统一日志接口
//
// 基于 Go 标准库 log/slog 封装，提供按组件命名的懒加载 logger：
//
//	var logger = log.Logger("core/eventbus")
//	logger.Debug("subscribed", "receiver", id, "type", typ)
//
// 支持通过环境变量配置：
//
//	# eventbus 组件 debug，其他 warn
//	EVENTMGR_LOG_LEVEL=core/eventbus=debug,warn
//
//	# JSON 输出
//	EVENTMGR_LOG_FORMAT=json
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// state 全局日志状态
var state struct {
	mu     sync.RWMutex
	output io.Writer
	format Format
	levels Levels
}

// ============================================================================
//                              全局配置
// ============================================================================

// Configure 按级别配置字符串和格式名称重建默认 logger
//
// 级别格式同 EVENTMGR_LOG_LEVEL。两项都会被替换，空字符串即默认值；
// 只需修改其中一项时使用 SetLevels 或 SetFormat。
func Configure(levelSpec, formatName string) error {
	levels, err := ParseLevels(levelSpec)
	if err != nil {
		return err
	}
	format, err := ParseFormat(formatName)
	if err != nil {
		return err
	}

	state.mu.Lock()
	state.levels = levels
	state.format = format
	state.mu.Unlock()

	rebuild()
	return nil
}

// SetLevels 只替换级别配置，保留输出格式
//
// 格式同 EVENTMGR_LOG_LEVEL。
func SetLevels(levelSpec string) error {
	levels, err := ParseLevels(levelSpec)
	if err != nil {
		return err
	}

	state.mu.Lock()
	state.levels = levels
	state.mu.Unlock()

	rebuild()
	return nil
}

// SetFormat 只替换输出格式，保留级别配置
func SetFormat(formatName string) error {
	format, err := ParseFormat(formatName)
	if err != nil {
		return err
	}

	state.mu.Lock()
	state.format = format
	state.mu.Unlock()

	rebuild()
	return nil
}

// SetOutput 设置日志输出目标
//
// 已创建的 LazyLogger 在下一次调用时即使用新的输出。
func SetOutput(w io.Writer) {
	state.mu.Lock()
	state.output = w
	state.mu.Unlock()

	rebuild()
}

// SetLevel 设置默认日志级别（不影响单独配置的组件）
func SetLevel(level slog.Level) {
	state.mu.Lock()
	state.levels.Default = level
	state.mu.Unlock()

	rebuild()
}

// SetDefault 直接替换默认 logger
func SetDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Default 返回默认 logger
func Default() *slog.Logger {
	return slog.Default()
}

// New 创建文本格式 logger
func New(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSON 创建 JSON 格式 logger
func NewJSON(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard 返回丢弃所有输出的 logger，用于测试
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelError + 1}))
}

// rebuild 用当前状态重建默认 logger
func rebuild() {
	state.mu.RLock()
	w, format, level := state.output, state.format, state.levels.Default
	state.mu.RUnlock()

	// 底层 handler 放行所有级别，实际过滤由 levelHandler 完成
	opts := &slog.HandlerOptions{Level: LevelDebug}
	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(&levelHandler{level: level, inner: h}))
}

// componentLevel 返回组件的单独级别
func componentLevel(component string) (slog.Level, bool) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.levels.For(component)
}

// ============================================================================
//                              levelHandler
// ============================================================================

// levelHandler 在内层 handler 之前做级别过滤
type levelHandler struct {
	level slog.Level
	inner slog.Handler
}

// Enabled 实现 slog.Handler
func (h *levelHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle 实现 slog.Handler
func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

// WithAttrs 实现 slog.Handler
func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, inner: h.inner.WithAttrs(attrs)}
}

// WithGroup 实现 slog.Handler
func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, inner: h.inner.WithGroup(name)}
}

// ============================================================================
//                              LazyLogger
// ============================================================================

// LazyLogger 懒加载 logger
//
// 每次日志调用时都从 slog.Default() 获取最新的 handler，
// 支持在运行时动态切换日志输出目标与级别。
type LazyLogger struct {
	component string
}

// Logger 返回带组件名的 LazyLogger
func Logger(component string) *LazyLogger {
	return &LazyLogger{component: component}
}

// Component 返回组件名
func (l *LazyLogger) Component() string {
	return l.component
}

// current 返回当前有效的 *slog.Logger
func (l *LazyLogger) current() *slog.Logger {
	h := slog.Default().Handler()
	if lvl, ok := componentLevel(l.component); ok {
		if lh, ok := h.(*levelHandler); ok {
			h = lh.inner
		}
		h = &levelHandler{level: lvl, inner: h}
	}
	return slog.New(h).With("component", l.component)
}

// Enabled 检查级别是否会输出，用于避免构造昂贵的日志参数
func (l *LazyLogger) Enabled(level slog.Level) bool {
	return l.current().Enabled(context.Background(), level)
}

// Debug 输出 Debug 级别日志
func (l *LazyLogger) Debug(msg string, args ...any) {
	l.current().Debug(msg, args...)
}

// Info 输出 Info 级别日志
func (l *LazyLogger) Info(msg string, args ...any) {
	l.current().Info(msg, args...)
}

// Warn 输出 Warn 级别日志
func (l *LazyLogger) Warn(msg string, args ...any) {
	l.current().Warn(msg, args...)
}

// Error 输出 Error 级别日志
func (l *LazyLogger) Error(msg string, args ...any) {
	l.current().Error(msg, args...)
}

// With 添加额外的属性
func (l *LazyLogger) With(args ...any) *slog.Logger {
	return l.current().With(args...)
}

// ============================================================================
//                              初始化
// ============================================================================

func init() {
	levels, format := fromEnv()
	state.output = os.Stderr
	state.levels = levels
	state.format = format
	rebuild()
}
