package eventbus

import "reflect"

// ============================================================================
// 延迟动作队列
// ============================================================================

// actionQueue 一次性动作的 FIFO 队列
//
// 执行期间新加入的动作进入 buffer，本轮不执行；
// 本轮结束后 buffer 成为下一轮的 live 列表，不会丢失。
// 某个动作 panic 时，本轮尚未执行的动作排在 buffer 之前留到下一轮。
type actionQueue struct {
	live      []func()
	buffer    []func()
	executing bool
	cleared   bool // 本轮执行期间调用过 clear
}

// add 追加动作
func (q *actionQueue) add(action func()) {
	if q.executing {
		q.buffer = append(q.buffer, action)
		return
	}
	q.live = append(q.live, action)
}

// exec 按 FIFO 顺序执行并清空 live 列表，返回执行的动作数量
//
// 动作内部再次发布事件时，嵌套的 exec 直接返回 0。
func (q *actionQueue) exec() int {
	if q.executing || len(q.live) == 0 {
		return 0
	}

	q.executing = true
	q.cleared = false
	actions := q.live
	q.live = nil

	started := 0
	defer func() {
		if started < len(actions) && !q.cleared {
			q.live = append(q.live, actions[started:]...)
		}
		q.live = append(q.live, q.buffer...)
		q.buffer = nil
		q.executing = false
	}()

	for _, action := range actions {
		started++
		action()
	}
	return len(actions)
}

// len 返回待执行的动作数量（含 buffer）
func (q *actionQueue) len() int {
	return len(q.live) + len(q.buffer)
}

// clear 丢弃所有待执行动作
func (q *actionQueue) clear() {
	q.live = nil
	q.buffer = nil
	q.cleared = true
}

// scheduledActions 按事件类型划分的动作队列
type scheduledActions struct {
	queues map[reflect.Type]*actionQueue
}

// newScheduledActions 创建空的按类型队列
func newScheduledActions() *scheduledActions {
	return &scheduledActions{
		queues: make(map[reflect.Type]*actionQueue),
	}
}

// add 为指定类型追加动作
func (s *scheduledActions) add(typ reflect.Type, action func()) {
	q, ok := s.queues[typ]
	if !ok {
		q = &actionQueue{}
		s.queues[typ] = q
	}
	q.add(action)
}

// exec 执行指定类型的队列，其他类型不受影响
func (s *scheduledActions) exec(typ reflect.Type) int {
	q, ok := s.queues[typ]
	if !ok {
		return 0
	}
	return q.exec()
}

// len 返回所有类型待执行的动作总数
func (s *scheduledActions) len() int {
	n := 0
	for _, q := range s.queues {
		n += q.len()
	}
	return n
}

// clear 丢弃所有类型的待执行动作
func (s *scheduledActions) clear() {
	for _, q := range s.queues {
		q.clear()
	}
}
