// Package interfaces 定义事件管理器公共接口
//
// 本文件定义 EventManager 接口，提供进程内同步事件发布订阅功能。
package interfaces

import (
	"reflect"

	"github.com/dep2p/go-eventmanager/pkg/types"
)

// Event 定义事件接口
//
// 具体事件类型嵌入 types.EventBase 后，其指针类型即满足本接口。
type Event interface {
	// Handled 返回事件是否已被处理
	Handled() bool

	// MarkHandled 标记事件已处理，停止向后续处理器传播
	MarkHandled()
}

// Identity 定义订阅者身份接口
//
// 订阅键由 ReceiverID 提供，而不是对象地址。
type Identity interface {
	// ReceiverID 返回接收者标识
	ReceiverID() types.ReceiverID
}

// EventManager 定义事件总线接口
//
// 订阅需要事件类型参数，由 eventbus 包的泛型函数提供（Subscribe、
// SubscribeMethod、Unsubscribe、ScheduleOn）；本接口只包含与类型无关的操作。
//
// 所有方法都不返回错误："未找到"一律视为空操作。
type EventManager interface {
	// Publish 发布事件：先执行紧急动作，再分发给该类型的处理器，
	// 最后执行该类型的计划动作
	Publish(event Event)

	// Schedule 计划一次性动作，在下一次（任意类型）发布前执行
	Schedule(action func())

	// ScheduleType 计划一次性动作，在下一次发布指定类型事件后执行
	ScheduleType(eventType reflect.Type, action func())

	// UnsubscribeType 取消接收者对指定事件类型的订阅
	UnsubscribeType(eventType reflect.Type, receiver Identity)

	// UnsubscribeAll 取消接收者的所有订阅
	UnsubscribeAll(receiver Identity)

	// IsSubscribed 检查接收者是否订阅了任何事件
	IsSubscribed(receiver Identity) bool

	// SubscriptionCount 返回接收者当前订阅的事件类型数量
	SubscriptionCount(receiver Identity) int

	// EventTypes 返回所有已注册的事件类型
	EventTypes() []reflect.Type

	// PendingActions 返回尚未执行的动作数量（紧急 + 计划）
	PendingActions() int

	// Reset 清空所有处理器、动作队列和订阅计数
	Reset()
}
