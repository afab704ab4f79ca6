package eventbus

import (
	"reflect"

	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
)

// ============================================================================
// 泛型订阅接口
// ============================================================================

// Subscribe 以闭包处理器订阅事件类型 E
//
// 同一接收者对同一事件类型重复订阅为空操作，保留第一次的处理器。
// 返回的 Subscription 关闭时取消该类型的订阅；参数无效时返回 nil。
func Subscribe[E pkgif.Event](b *Bus, receiver pkgif.Identity, fn func(E)) *Subscription {
	if b == nil || fn == nil {
		return nil
	}
	return b.subscribe(TypeOf[E](), receiver, &closureHandler[E]{fn: fn})
}

// SubscribeMethod 以方法处理器订阅事件类型 E
//
// method 通常是方法表达式：
//
//	eventbus.SubscribeMethod(bus, player, (*Player).OnTick)
func SubscribeMethod[R pkgif.Identity, E pkgif.Event](b *Bus, receiver R, method func(R, E)) *Subscription {
	if b == nil || method == nil {
		return nil
	}
	return b.subscribe(TypeOf[E](), receiver, &methodHandler[R, E]{receiver: receiver, method: method})
}

// Unsubscribe 取消接收者对事件类型 E 的订阅
func Unsubscribe[E pkgif.Event](b *Bus, receiver pkgif.Identity) {
	if b == nil {
		return
	}
	b.UnsubscribeType(TypeOf[E](), receiver)
}

// ScheduleOn 计划一次性动作，在下一次发布 E 之后执行
func ScheduleOn[E pkgif.Event](b *Bus, action func()) {
	if b == nil {
		return
	}
	b.ScheduleType(TypeOf[E](), action)
}

// HandlerCount 返回事件类型 E 当前的处理器数量
func HandlerCount[E pkgif.Event](b *Bus) int {
	if b == nil {
		return 0
	}
	return b.handlerCount(TypeOf[E]())
}

// TypeOf 返回事件类型 E 的路由键
func TypeOf[E pkgif.Event]() reflect.Type {
	return reflect.TypeFor[E]()
}
