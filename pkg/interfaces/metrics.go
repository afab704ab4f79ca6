// Package interfaces 定义事件管理器公共接口
//
// 本文件定义 Observer 接口，供总线上报分发指标。
package interfaces

import "time"

// ActionQueue 动作队列类型
type ActionQueue string

const (
	// ActionQueueUrgent 紧急队列（每次发布前执行）
	ActionQueueUrgent ActionQueue = "urgent"
	// ActionQueueScheduled 计划队列（指定类型发布后执行）
	ActionQueueScheduled ActionQueue = "scheduled"
)

// Observer 定义总线观察者接口
//
// 所有回调都在发布者的 goroutine 上同步调用，实现必须快速返回，
// 且不得重入总线。
//
//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/dep2p/go-eventmanager/pkg/interfaces Observer
type Observer interface {
	// ObservePublish 上报一次发布的结果
	//   - eventType: 事件类型名
	//   - invoked: 被调用的处理器数量
	//   - handled: 是否有处理器标记了 handled（提前终止）
	//   - elapsed: 整次发布耗时（含动作队列）
	ObservePublish(eventType string, invoked int, handled bool, elapsed time.Duration)

	// ObserveActions 上报一次队列排空执行的动作数量
	ObserveActions(queue ActionQueue, executed int)

	// ObserveReceivers 上报当前有订阅的接收者数量
	ObserveReceivers(active int)
}

// NopObserver 空观察者
type NopObserver struct{}

// ObservePublish 实现 Observer
func (NopObserver) ObservePublish(string, int, bool, time.Duration) {}

// ObserveActions 实现 Observer
func (NopObserver) ObserveActions(ActionQueue, int) {}

// ObserveReceivers 实现 Observer
func (NopObserver) ObserveReceivers(int) {}
