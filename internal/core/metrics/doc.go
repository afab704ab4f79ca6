// Package metrics 提供事件总线的 Prometheus 指标
//
// Collector 实现 interfaces.Observer，由总线在每次发布、动作队列排空、
// 活跃接收者数量变化时同步回调，并作为 prometheus.Collector 暴露：
//
//	eventmanager_bus_published_total{event_type}        发布次数
//	eventmanager_bus_handlers_invoked_total{event_type} 处理器调用次数
//	eventmanager_bus_short_circuited_total{event_type}  被 handled 提前终止的发布次数
//	eventmanager_bus_publish_duration_seconds{event_type}
//	eventmanager_bus_actions_executed_total{queue}      延迟动作执行次数
//	eventmanager_bus_active_receivers                   有订阅的接收者数量
//
// # 快速开始
//
//	c := metrics.NewCollector("eventmanager", "bus")
//	prometheus.MustRegister(c)
//	bus := eventbus.NewBus(eventbus.WithObserver(c))
//
// # Fx 模块
//
// Module 根据 config.Metrics 提供 interfaces.Observer；容器中存在
// prometheus.Registerer 时在 OnStart 注册、OnStop 注销。
package metrics
