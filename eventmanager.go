package eventmanager

import (
	"sync"

	"github.com/dep2p/go-eventmanager/internal/core/eventbus"
	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Event 事件接口
	Event = pkgif.Event

	// EventBase 事件基础结构，事件结构体嵌入后其指针即为 Event
	EventBase = types.EventBase

	// ReceiverID 接收者标识
	ReceiverID = types.ReceiverID

	// Identity 订阅者身份
	Identity = pkgif.Identity

	// Bus 同步事件总线
	Bus = eventbus.Bus

	// Receiver 接收者生命周期钩子
	Receiver = eventbus.Receiver

	// Subscription 订阅句柄
	Subscription = eventbus.Subscription
)

// ════════════════════════════════════════════════════════════════════════════
//                              进程级总线
// ════════════════════════════════════════════════════════════════════════════

var (
	defaultOnce sync.Once
	defaultBus  *Bus
)

// Default 返回进程级总线，首次调用时创建
//
// 进程级总线没有指标与配置；需要它们时使用 Start 创建的 Runtime。
func Default() *Bus {
	defaultOnce.Do(func() {
		defaultBus = eventbus.NewBus()
		logger.Debug("进程级总线已创建")
	})
	return defaultBus
}

// NewBus 创建独立总线
//
// 需要指标、慢发布告警等配置时使用 Start。
func NewBus() *Bus {
	return eventbus.NewBus()
}

// NewReceiver 在进程级总线上创建接收者
func NewReceiver() *Receiver {
	return eventbus.NewReceiver(Default())
}

// ════════════════════════════════════════════════════════════════════════════
//                              包级函数
// ════════════════════════════════════════════════════════════════════════════

// Publish 在进程级总线上发布事件
func Publish(event Event) {
	Default().Publish(event)
}

// Subscribe 在进程级总线上以闭包订阅事件类型 E
func Subscribe[E Event](receiver Identity, fn func(E)) *Subscription {
	return eventbus.Subscribe(Default(), receiver, fn)
}

// SubscribeMethod 在进程级总线上以方法订阅事件类型 E
//
//	eventmanager.SubscribeMethod(player, (*Player).OnTick)
func SubscribeMethod[R Identity, E Event](receiver R, method func(R, E)) *Subscription {
	return eventbus.SubscribeMethod(Default(), receiver, method)
}

// Unsubscribe 取消接收者对事件类型 E 的订阅
func Unsubscribe[E Event](receiver Identity) {
	eventbus.Unsubscribe[E](Default(), receiver)
}

// UnsubscribeAll 取消接收者的全部订阅
func UnsubscribeAll(receiver Identity) {
	Default().UnsubscribeAll(receiver)
}

// Schedule 计划一次性动作，在下一次发布（任意类型）前执行
func Schedule(action func()) {
	Default().Schedule(action)
}

// ScheduleOn 计划一次性动作，在下一次发布 E 后执行
func ScheduleOn[E Event](action func()) {
	eventbus.ScheduleOn[E](Default(), action)
}

// ════════════════════════════════════════════════════════════════════════════
//                              指定总线
// ════════════════════════════════════════════════════════════════════════════

// NewBusReceiver 在指定总线上创建接收者
func NewBusReceiver(bus *Bus) *Receiver {
	return eventbus.NewReceiver(bus)
}

// BusSubscribe 在指定总线上以闭包订阅事件类型 E
//
//	bus := rt.Bus()
//	eventmanager.BusSubscribe(bus, r, func(e *Tick) { ... })
func BusSubscribe[E Event](bus *Bus, receiver Identity, fn func(E)) *Subscription {
	return eventbus.Subscribe(bus, receiver, fn)
}

// BusSubscribeMethod 在指定总线上以方法订阅事件类型 E
func BusSubscribeMethod[R Identity, E Event](bus *Bus, receiver R, method func(R, E)) *Subscription {
	return eventbus.SubscribeMethod(bus, receiver, method)
}

// BusUnsubscribe 取消接收者在指定总线上对事件类型 E 的订阅
func BusUnsubscribe[E Event](bus *Bus, receiver Identity) {
	eventbus.Unsubscribe[E](bus, receiver)
}

// BusScheduleOn 在指定总线上计划一次性动作，在下一次发布 E 后执行
func BusScheduleOn[E Event](bus *Bus, action func()) {
	eventbus.ScheduleOn[E](bus, action)
}

// HandlerCount 返回指定总线上事件类型 E 的处理器数量
func HandlerCount[E Event](bus *Bus) int {
	return eventbus.HandlerCount[E](bus)
}
