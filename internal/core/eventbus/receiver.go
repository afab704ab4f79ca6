package eventbus

import (
	"reflect"

	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/types"
)

// ============================================================================
// Receiver 实现
// ============================================================================

// Receiver 接收者生命周期钩子
//
// 订阅者类型嵌入 *Receiver 以获得 ReceiverID 与 Close：
//
//	type Player struct {
//	    *eventbus.Receiver
//	    hp int
//	}
//
//	p := &Player{Receiver: eventbus.NewReceiver(bus)}
//	eventbus.SubscribeMethod(bus, p, (*Player).OnTick)
//	defer p.Close() // 取消 p 的全部订阅
//
// 接收者生命周期结束时必须调用 Close，否则总线会继续调用它的处理器。
type Receiver struct {
	bus *Bus
	id  types.ReceiverID
}

var _ pkgif.Identity = (*Receiver)(nil)

// NewReceiver 创建接收者，签发新的 ReceiverID
func NewReceiver(b *Bus) *Receiver {
	return &Receiver{
		bus: b,
		id:  types.NewReceiverID(),
	}
}

// ReceiverID 返回接收者标识
func (r *Receiver) ReceiverID() types.ReceiverID {
	if r == nil {
		return types.EmptyReceiverID
	}
	return r.id
}

// Bus 返回接收者所属的总线
func (r *Receiver) Bus() *Bus {
	return r.bus
}

// Close 取消接收者在总线上的全部订阅
//
// 可以多次调用；没有订阅时为空操作。
func (r *Receiver) Close() error {
	if r == nil || r.bus == nil {
		return nil
	}
	r.bus.UnsubscribeAll(r)
	return nil
}

// ============================================================================
// Subscription 实现
// ============================================================================

// Subscription 单个事件类型的订阅句柄
//
// 句柄绑定到订阅时的注册条目：Close 只移除该条目。重复订阅返回的多个句柄
// 指向同一条目，关闭任意一个即取消订阅；条目已被取消后（包括接收者随后
// 重新订阅同一类型），Close 为空操作，不影响新的订阅。
type Subscription struct {
	bus      *Bus
	typ      reflect.Type
	receiver pkgif.Identity
	list     *handlerList
	entry    *handlerEntry
	closed   bool
}

// EventType 返回订阅的事件类型
func (s *Subscription) EventType() reflect.Type {
	return s.typ
}

// Receiver 返回订阅者身份
func (s *Subscription) Receiver() pkgif.Identity {
	return s.receiver
}

// Close 取消订阅，可以多次调用
func (s *Subscription) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	s.bus.unsubscribeEntry(s.typ, s.list, s.entry)
	return nil
}
