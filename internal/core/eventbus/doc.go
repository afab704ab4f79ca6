// Package eventbus 实现进程内同步事件总线
//
// 处理器按事件的精确动态类型路由，在发布者的调用栈上同步执行：
//   - 按订阅顺序调用，每个接收者每种事件类型最多一个处理器
//   - 处理器调用 MarkHandled 后停止向后续处理器传播
//   - 紧急动作在每次发布前执行，计划动作在指定类型发布后执行
//   - 处理器可以在分发中订阅、取消订阅、计划动作、再次发布
//
// # 快速开始
//
//	bus := eventbus.NewBus()
//
//	type Tick struct {
//	    types.EventBase
//	    Frame int
//	}
//
//	type Player struct {
//	    *eventbus.Receiver
//	}
//
//	func (p *Player) OnTick(e *Tick) { ... }
//
//	p := &Player{Receiver: eventbus.NewReceiver(bus)}
//	eventbus.SubscribeMethod(bus, p, (*Player).OnTick)
//	defer p.Close()
//
//	bus.Publish(&Tick{Frame: 1})
//
// 闭包处理器：
//
//	r := eventbus.NewReceiver(bus)
//	sub := eventbus.Subscribe(bus, r, func(e *Tick) { ... })
//	defer sub.Close()
//
// # 路由规则
//
// 路由键是事件的精确动态类型。*Tick 与 Tick 是不同的类型；
// 嵌入 Tick 的其他事件类型不会投递给 *Tick 的处理器。
// 以接口类型订阅会被忽略并输出告警。
//
// # Fx 模块
//
//	app := fx.New(
//	    metrics.Module,
//	    eventbus.Module(),
//	    fx.Invoke(func(bus *eventbus.Bus) { ... }),
//	)
//
// # 架构定位
//
// Tier: Core Layer Level 1
//
// 依赖关系：
//   - 依赖：pkg/interfaces, pkg/types, config
//   - 被依赖：根包 eventmanager
//
// # 并发安全
//
// Bus 不是并发安全的，所有调用必须来自同一个 goroutine。
// 处理器在分发中重入总线是正常用法，加锁会导致自身死锁；
// 需要跨 goroutine 投递时，由调用方把事件转交到拥有总线的 goroutine。
//
// 处理器 panic 会沿 Publish 向上传播，分发层数与动作队列状态会被恢复。
package eventbus
