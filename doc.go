// Package eventmanager 提供进程内同步事件总线
//
// 接收者按事件类型订阅处理器，发布者发布事件值后，该精确类型的全部处理器
// 按订阅顺序在发布者的 goroutine 上同步执行。
//
// # 核心概念
//
//   - Event: 嵌入 EventBase 的事件结构体，以指针发布
//   - Receiver: 订阅者身份与生命周期钩子，Close 取消其全部订阅
//   - Subscription: 单个事件类型的订阅句柄
//   - Schedule / ScheduleOn: 延迟到下一次发布执行的一次性动作
//
// # 快速开始
//
//	import "github.com/dep2p/go-eventmanager"
//
//	type Tick struct {
//	    eventmanager.EventBase
//	    Frame int
//	}
//
//	type Player struct {
//	    *eventmanager.Receiver
//	}
//
//	func (p *Player) OnTick(e *Tick) { ... }
//
//	p := &Player{Receiver: eventmanager.NewReceiver()}
//	eventmanager.SubscribeMethod(p, (*Player).OnTick)
//	defer p.Close()
//
//	eventmanager.Publish(&Tick{Frame: 1})
//
// 包级函数作用于进程级总线 Default()，首次使用时创建。
//
// # 运行时
//
// 需要配置、日志与 Prometheus 指标时，用 Start 组装一个独立的总线：
//
//	rt, err := eventmanager.Start(ctx,
//	    eventmanager.WithConfig(cfg),
//	    eventmanager.WithPrometheusRegisterer(prometheus.DefaultRegisterer),
//	)
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	bus := rt.Bus()
//	r := eventmanager.NewBusReceiver(bus)
//	eventmanager.BusSubscribe(bus, r, func(e *Tick) { ... })
//
// # 并发安全
//
// 总线不是并发安全的。所有调用必须来自同一个 goroutine，
// 或由调用方在外部用同一把锁保护全部入口。处理器内部重入总线
// （发布、订阅、取消订阅、计划动作）是受支持的用法。
//
// # 文件组织
//
//   - eventmanager.go: 进程级总线与包级函数
//   - runtime.go: Runtime 生命周期
//   - fx.go: Fx 应用组装
//   - options.go: 运行时选项
//   - errors.go: 公共错误
package eventmanager
