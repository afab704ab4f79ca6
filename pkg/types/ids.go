// Package types 定义事件管理器的基础类型
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// ============================================================================
//                              ReceiverID - 接收者标识
// ============================================================================

// ReceiverID 接收者唯一标识符
//
// 在创建接收者时签发，替代对象地址作为订阅键。
// 零值（EmptyReceiverID）不属于任何接收者。
type ReceiverID uuid.UUID

// EmptyReceiverID 空接收者ID
var EmptyReceiverID ReceiverID

// NewReceiverID 生成新的接收者ID（UUID v4）
func NewReceiverID() ReceiverID {
	return ReceiverID(uuid.New())
}

// ParseReceiverID 从字符串解析接收者ID
func ParseReceiverID(s string) (ReceiverID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return EmptyReceiverID, fmt.Errorf("%w: %v", ErrInvalidReceiverID, err)
	}
	return ReceiverID(u), nil
}

// String 返回标准 UUID 字符串表示
func (id ReceiverID) String() string {
	if id.IsEmpty() {
		return ""
	}
	return uuid.UUID(id).String()
}

// ShortString 返回前 8 个字符，用于日志
func (id ReceiverID) ShortString() string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// IsEmpty 检查是否为空ID
func (id ReceiverID) IsEmpty() bool {
	return id == EmptyReceiverID
}
