// Package types 定义事件管理器的基础类型
//
// 本文件定义所有公共错误类型。
package types

import "errors"

// ============================================================================
//                              ID 相关错误
// ============================================================================

var (
	// ErrInvalidReceiverID 无效的接收者 ID
	ErrInvalidReceiverID = errors.New("invalid receiver ID")
)
