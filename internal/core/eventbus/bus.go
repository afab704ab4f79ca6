package eventbus

import (
	"reflect"
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/lib/log"
	"github.com/dep2p/go-eventmanager/pkg/types"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 同步事件总线
//
// 持有 事件类型 → 有序处理器列表 的映射、紧急动作队列、按类型的计划动作队列，
// 以及每个接收者当前订阅的事件类型数量。
//
// Bus 不是并发安全的，见包文档。
type Bus struct {
	// subscriptions 事件类型 → 处理器列表
	subscriptions map[reflect.Type]*handlerList

	// urgent 每次发布前执行的一次性动作
	urgent actionQueue

	// scheduled 指定类型发布后执行的一次性动作
	scheduled *scheduledActions

	// subsCount 接收者 → 订阅的事件类型数量
	subsCount map[types.ReceiverID]int

	observer      pkgif.Observer
	clock         clock.Clock
	slowThreshold time.Duration
	trace         bool
}

var _ pkgif.EventManager = (*Bus)(nil)

// NewBus 创建新的事件总线
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		subscriptions: make(map[reflect.Type]*handlerList),
		scheduled:     newScheduledActions(),
		subsCount:     make(map[types.ReceiverID]int),
		observer:      pkgif.NopObserver{},
		clock:         clock.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ============================================================================
// 发布
// ============================================================================

// Publish 发布事件
//
// 固定顺序：
//  1. 执行紧急动作队列
//  2. 若该事件精确类型存在处理器列表，按订阅顺序分发
//  3. 执行该类型的计划动作队列
//
// 没有处理器不是错误，第 1、3 步照常执行。nil 事件直接忽略。
func (b *Bus) Publish(event pkgif.Event) {
	if isNil(event) {
		logger.Debug("忽略 nil 事件")
		return
	}

	start := b.clock.Now()
	typ := reflect.TypeOf(event)

	if n := b.urgent.exec(); n > 0 {
		b.observer.ObserveActions(pkgif.ActionQueueUrgent, n)
	}

	var (
		invoked int
		stopped bool
	)
	if list, ok := b.subscriptions[typ]; ok {
		invoked, stopped = list.dispatch(event)
	}

	if n := b.scheduled.exec(typ); n > 0 {
		b.observer.ObserveActions(pkgif.ActionQueueScheduled, n)
	}

	elapsed := b.clock.Since(start)
	b.observer.ObservePublish(typ.String(), invoked, stopped, elapsed)

	if b.trace {
		logger.Debug("事件已发布",
			"type", typ.String(),
			"invoked", invoked,
			"handled", stopped,
			"elapsed", elapsed)
	}
	if b.slowThreshold > 0 && elapsed > b.slowThreshold {
		logger.Warn("慢发布",
			"type", typ.String(),
			"invoked", invoked,
			"elapsed", elapsed,
			"threshold", b.slowThreshold)
	}
}

// ============================================================================
// 计划动作
// ============================================================================

// Schedule 计划一次性动作，在下一次（任意类型）发布的分发之前执行
func (b *Bus) Schedule(action func()) {
	if action == nil {
		return
	}
	b.urgent.add(action)
}

// ScheduleType 计划一次性动作，在下一次发布 eventType 的分发之后执行
func (b *Bus) ScheduleType(eventType reflect.Type, action func()) {
	if eventType == nil || action == nil {
		return
	}
	b.scheduled.add(eventType, action)
}

// PendingActions 返回尚未执行的动作数量
func (b *Bus) PendingActions() int {
	return b.urgent.len() + b.scheduled.len()
}

// ============================================================================
// 订阅
// ============================================================================

// subscribe 在 typ 的列表中为接收者注册处理器
//
// 仅当列表确实发生变化时才增加接收者计数；重复订阅为空操作。
func (b *Bus) subscribe(typ reflect.Type, receiver pkgif.Identity, h handler) *Subscription {
	if typ.Kind() == reflect.Interface {
		logger.Warn("事件类型必须是具体类型，接口类型永远不会匹配", "type", typ.String())
		return nil
	}

	id, ok := receiverID(receiver)
	if !ok {
		logger.Warn("忽略无身份的订阅", "type", typ.String())
		return nil
	}

	list, ok := b.subscriptions[typ]
	if !ok {
		list = newHandlerList()
		b.subscriptions[typ] = list
	}

	entry, added := list.add(id, h)
	if added {
		b.subsCount[id]++
		if b.subsCount[id] == 1 {
			b.observer.ObserveReceivers(len(b.subsCount))
		}
		logger.Debug("已订阅", "receiver", id.ShortString(), "type", typ.String())
	}

	return &Subscription{bus: b, typ: typ, receiver: receiver, list: list, entry: entry}
}

// UnsubscribeType 取消接收者对 eventType 的订阅
//
// 接收者没有任何订阅时为空操作。
func (b *Bus) UnsubscribeType(eventType reflect.Type, receiver pkgif.Identity) {
	id, ok := receiverID(receiver)
	if !ok || eventType == nil {
		return
	}

	if _, ok := b.subsCount[id]; !ok {
		return
	}

	list, ok := b.subscriptions[eventType]
	if !ok || !list.remove(id) {
		return
	}
	b.released(id, eventType)
}

// unsubscribeEntry 取消订阅句柄创建的条目
//
// 条目已被取消（或接收者已重新订阅为新条目）时为空操作。
func (b *Bus) unsubscribeEntry(eventType reflect.Type, list *handlerList, entry *handlerEntry) {
	if b.subscriptions[eventType] != list || !list.removeEntry(entry) {
		return
	}
	b.released(entry.id, eventType)
}

// released 在接收者失去一个事件类型的订阅后更新计数
func (b *Bus) released(id types.ReceiverID, eventType reflect.Type) {
	if count := b.subsCount[id] - 1; count > 0 {
		b.subsCount[id] = count
	} else {
		delete(b.subsCount, id)
		b.observer.ObserveReceivers(len(b.subsCount))
	}
	logger.Debug("已取消订阅", "receiver", id.ShortString(), "type", eventType.String())
}

// UnsubscribeAll 取消接收者的所有订阅
//
// 接收者没有任何订阅时为空操作，不遍历注册表。
func (b *Bus) UnsubscribeAll(receiver pkgif.Identity) {
	id, ok := receiverID(receiver)
	if !ok {
		return
	}

	if count := b.subsCount[id]; count == 0 {
		return
	}

	for _, list := range b.subscriptions {
		list.remove(id)
	}
	delete(b.subsCount, id)
	b.observer.ObserveReceivers(len(b.subsCount))

	logger.Debug("已取消全部订阅", "receiver", id.ShortString())
}

// ============================================================================
// 查询
// ============================================================================

// IsSubscribed 检查接收者是否订阅了任何事件
func (b *Bus) IsSubscribed(receiver pkgif.Identity) bool {
	return b.SubscriptionCount(receiver) > 0
}

// SubscriptionCount 返回接收者当前订阅的事件类型数量
func (b *Bus) SubscriptionCount(receiver pkgif.Identity) int {
	id, ok := receiverID(receiver)
	if !ok {
		return 0
	}
	return b.subsCount[id]
}

// EventTypes 返回当前至少有一个处理器的事件类型，按名称排序
func (b *Bus) EventTypes() []reflect.Type {
	out := make([]reflect.Type, 0, len(b.subscriptions))
	for typ, list := range b.subscriptions {
		if list.len() > 0 {
			out = append(out, typ)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// handlerCount 返回 typ 的处理器数量
func (b *Bus) handlerCount(typ reflect.Type) int {
	list, ok := b.subscriptions[typ]
	if !ok {
		return 0
	}
	return list.len()
}

// ============================================================================
// 清理
// ============================================================================

// Reset 清空所有处理器、动作队列和订阅计数
//
// 在分发过程中调用时，当前分发在下一步检查时结束。
func (b *Bus) Reset() {
	for _, list := range b.subscriptions {
		list.clear()
	}
	b.urgent.clear()
	b.scheduled.clear()
	clear(b.subsCount)
	b.observer.ObserveReceivers(0)
}

// ============================================================================
// 内部方法
// ============================================================================

// receiverID 取出接收者ID；nil 接收者或空ID返回 false
func receiverID(receiver pkgif.Identity) (types.ReceiverID, bool) {
	if isNil(receiver) {
		return types.EmptyReceiverID, false
	}
	id := receiver.ReceiverID()
	return id, !id.IsEmpty()
}

// isNil 检查接口值或其中的指针是否为 nil
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
