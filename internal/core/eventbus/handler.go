package eventbus

import (
	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
)

// ============================================================================
// 处理器
// ============================================================================

// handler 类型擦除的处理器
//
// 注册表按事件的精确动态类型分桶，invoke 收到的事件一定是
// 注册时的事件类型，断言不会失败。
type handler interface {
	invoke(event pkgif.Event)
}

// methodHandler 绑定到接收者实例与方法表达式的处理器
//
//	SubscribeMethod(bus, player, (*Player).OnTick)
type methodHandler[R any, E pkgif.Event] struct {
	receiver R
	method   func(R, E)
}

func (h *methodHandler[R, E]) invoke(event pkgif.Event) {
	h.method(h.receiver, event.(E))
}

// closureHandler 绑定到任意闭包的处理器
type closureHandler[E pkgif.Event] struct {
	fn func(E)
}

func (h *closureHandler[E]) invoke(event pkgif.Event) {
	h.fn(event.(E))
}
