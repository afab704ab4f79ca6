// Package types 定义事件管理器公共类型
//
// 本文件定义事件相关类型。
package types

// ============================================================================
//                              EventBase - 事件基础结构
// ============================================================================

// EventBase 所有自定义事件的基础结构
//
// 事件类型通过嵌入 EventBase 获得 handled 标记；*T 因此满足
// interfaces.Event 接口。事件仅在一次 Publish 调用期间有效，
// 处理器不得在调用返回后继续持有事件指针。
type EventBase struct {
	handled bool
}

// Handled 返回事件是否已被标记为已处理
func (e *EventBase) Handled() bool {
	return e.handled
}

// MarkHandled 标记事件已处理
//
// 当前分发中排在后面的处理器将不再被调用。
func (e *EventBase) MarkHandled() {
	e.handled = true
}
