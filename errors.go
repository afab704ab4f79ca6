package eventmanager

import "errors"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 运行时生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted 运行时未启动
	ErrNotStarted = errors.New("runtime not started")

	// ErrAlreadyStarted 运行时已启动
	ErrAlreadyStarted = errors.New("runtime already started")

	// ErrRuntimeClosed 运行时已关闭
	ErrRuntimeClosed = errors.New("runtime closed")
)
