package eventbus

import (
	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/types"
)

// ============================================================================
// 有序处理器列表
// ============================================================================

// handlerEntry 处理器条目
type handlerEntry struct {
	id  types.ReceiverID
	h   handler
	pos int // 在 order 中的下标
}

// handlerList 单个事件类型的有序处理器注册表
//
// entries 提供按接收者的 O(1) 查找，order 保存插入顺序，用于分发。
// 不变式：order 中每个槽位要么是 entries 中的活动条目，要么是墓碑（nil）；
// entries 中每个条目在 order 中恰好占一个活动槽位。
//
// 分发期间的删除只把槽位置为墓碑，待最外层分发结束后统一压缩，
// 因此处理器可以在被调用时安全地取消自己或其他接收者的订阅。
type handlerList struct {
	entries map[types.ReceiverID]*handlerEntry
	order   []*handlerEntry

	depth        int  // 正在进行的分发层数（嵌套发布同一类型时 > 1）
	needsCleanUp bool // order 中存在待清理的墓碑
}

// newHandlerList 创建空列表
func newHandlerList() *handlerList {
	return &handlerList{
		entries: make(map[types.ReceiverID]*handlerEntry),
	}
}

// add 添加处理器，返回接收者当前的条目
//
// 接收者已存在时为空操作，返回已有条目与 false。
func (l *handlerList) add(id types.ReceiverID, h handler) (*handlerEntry, bool) {
	if e, ok := l.entries[id]; ok {
		return e, false
	}

	e := &handlerEntry{id: id, h: h, pos: len(l.order)}
	l.entries[id] = e
	l.order = append(l.order, e)
	return e, true
}

// remove 移除处理器；接收者不存在时为空操作，返回 false
func (l *handlerList) remove(id types.ReceiverID) bool {
	e, ok := l.entries[id]
	if !ok {
		return false
	}
	return l.removeEntry(e)
}

// removeEntry 仅当 e 仍是其接收者的当前条目时移除
//
// 接收者取消后重新订阅会得到新条目，旧条目的移除为空操作。
func (l *handlerList) removeEntry(e *handlerEntry) bool {
	if e == nil || l.entries[e.id] != e {
		return false
	}
	delete(l.entries, e.id)

	if l.executing() {
		l.order[e.pos] = nil
		l.needsCleanUp = true
		return true
	}

	copy(l.order[e.pos:], l.order[e.pos+1:])
	l.order[len(l.order)-1] = nil
	l.order = l.order[:len(l.order)-1]
	for i := e.pos; i < len(l.order); i++ {
		l.order[i].pos = i
	}
	return true
}

// dispatch 按插入顺序调用处理器
//
// 跳过墓碑；一旦事件被标记为 handled 立即停止。
// 分发过程中追加的处理器也会在本轮被调用（每步都重新读取长度）。
// 返回被调用的处理器数量，以及是否因 handled 提前终止。
func (l *handlerList) dispatch(event pkgif.Event) (invoked int, stopped bool) {
	l.depth++
	defer func() {
		l.depth--
		if l.depth == 0 {
			l.cleanUp()
		}
	}()

	for i := 0; i < len(l.order); i++ {
		e := l.order[i]
		if e == nil {
			continue
		}

		e.h.invoke(event)
		invoked++

		if event.Handled() {
			return invoked, true
		}
	}
	return invoked, false
}

// clear 无条件清空所有处理器
func (l *handlerList) clear() {
	clear(l.entries)
	for i := range l.order {
		l.order[i] = nil
	}
	l.order = l.order[:0]
	l.needsCleanUp = false
}

// len 返回活动处理器数量
func (l *handlerList) len() int {
	return len(l.entries)
}

// contains 检查接收者是否在列表中
func (l *handlerList) contains(id types.ReceiverID) bool {
	_, ok := l.entries[id]
	return ok
}

// executing 是否处于分发中
func (l *handlerList) executing() bool {
	return l.depth > 0
}

// cleanUp 压缩墓碑
func (l *handlerList) cleanUp() {
	if !l.needsCleanUp {
		return
	}
	l.needsCleanUp = false

	live := l.order[:0]
	for _, e := range l.order {
		if e == nil {
			continue
		}
		e.pos = len(live)
		live = append(live, e)
	}
	for i := len(live); i < len(l.order); i++ {
		l.order[i] = nil
	}
	l.order = live
}
