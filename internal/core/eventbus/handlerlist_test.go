package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/types"
)

// funcHandler 测试用处理器
type funcHandler func(pkgif.Event)

func (f funcHandler) invoke(event pkgif.Event) { f(event) }

// assertListInvariant 检查 entries 与 order 的一致性
func assertListInvariant(t *testing.T, l *handlerList) {
	t.Helper()

	live := 0
	for i, e := range l.order {
		if e == nil {
			continue
		}
		live++
		assert.Equal(t, i, e.pos, "条目下标应与位置一致")
		got, ok := l.entries[e.id]
		require.True(t, ok, "order 中的活动条目必须在 entries 中")
		assert.Same(t, e, got)
	}
	assert.Equal(t, len(l.entries), live, "entries 中每个条目在 order 中恰好出现一次")
}

// ============================================================================
// add / remove
// ============================================================================

// TestHandlerList_AddIdempotent 测试重复添加为空操作
func TestHandlerList_AddIdempotent(t *testing.T) {
	l := newHandlerList()
	id := types.NewReceiverID()

	var calls []string
	first, added := l.add(id, funcHandler(func(pkgif.Event) { calls = append(calls, "first") }))
	assert.True(t, added)
	again, added := l.add(id, funcHandler(func(pkgif.Event) { calls = append(calls, "second") }))
	assert.False(t, added)
	assert.Same(t, first, again, "重复添加返回已有条目")

	assert.Equal(t, 1, l.len())
	invoked, stopped := l.dispatch(&tickEvent{})
	assert.Equal(t, 1, invoked)
	assert.False(t, stopped)
	assert.Equal(t, []string{"first"}, calls, "保留第一次注册的处理器")
	assertListInvariant(t, l)
}

// TestHandlerList_RemoveAbsent 测试删除不存在的接收者
func TestHandlerList_RemoveAbsent(t *testing.T) {
	l := newHandlerList()
	assert.False(t, l.remove(types.NewReceiverID()))

	id := types.NewReceiverID()
	l.add(id, funcHandler(func(pkgif.Event) {}))
	assert.True(t, l.remove(id))
	assert.False(t, l.remove(id))
	assert.Equal(t, 0, l.len())
	assert.Empty(t, l.order)
}

// TestHandlerList_RemoveStaleEntry 测试重新添加后旧条目的移除为空操作
func TestHandlerList_RemoveStaleEntry(t *testing.T) {
	l := newHandlerList()
	id := types.NewReceiverID()

	old, _ := l.add(id, funcHandler(func(pkgif.Event) {}))
	require.True(t, l.removeEntry(old))
	assert.False(t, l.removeEntry(old), "已移除的条目")

	current, _ := l.add(id, funcHandler(func(pkgif.Event) {}))
	assert.False(t, l.removeEntry(old), "旧条目不能移除新条目")
	assert.True(t, l.contains(id))
	assert.False(t, l.removeEntry(nil))

	assert.True(t, l.removeEntry(current))
	assert.False(t, l.contains(id))
	assertListInvariant(t, l)
}

// TestHandlerList_RemoveOutsideDispatch 测试分发外删除立即压缩
func TestHandlerList_RemoveOutsideDispatch(t *testing.T) {
	l := newHandlerList()
	ids := make([]types.ReceiverID, 4)
	for i := range ids {
		ids[i] = types.NewReceiverID()
		l.add(ids[i], funcHandler(func(pkgif.Event) {}))
	}

	l.remove(ids[1])

	assert.Len(t, l.order, 3)
	assert.False(t, l.needsCleanUp)
	assert.False(t, l.contains(ids[1]))
	assert.True(t, l.contains(ids[2]))
	assertListInvariant(t, l)
}

// ============================================================================
// dispatch
// ============================================================================

// TestHandlerList_DispatchOrder 测试按插入顺序分发
func TestHandlerList_DispatchOrder(t *testing.T) {
	l := newHandlerList()

	var calls []int
	for i := 0; i < 10; i++ {
		l.add(types.NewReceiverID(), funcHandler(func(pkgif.Event) { calls = append(calls, i) }))
	}

	invoked, _ := l.dispatch(&tickEvent{})
	assert.Equal(t, 10, invoked)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, calls)
}

// TestHandlerList_DispatchShortCircuit 测试 handled 后停止
func TestHandlerList_DispatchShortCircuit(t *testing.T) {
	l := newHandlerList()

	var calls []int
	for i := 0; i < 5; i++ {
		l.add(types.NewReceiverID(), funcHandler(func(e pkgif.Event) {
			calls = append(calls, i)
			if i == 2 {
				e.MarkHandled()
			}
		}))
	}

	invoked, stopped := l.dispatch(&tickEvent{})
	assert.Equal(t, 3, invoked)
	assert.True(t, stopped)
	assert.Equal(t, []int{0, 1, 2}, calls)
}

// TestHandlerList_RemoveDuringDispatch 测试分发中删除留下墓碑
func TestHandlerList_RemoveDuringDispatch(t *testing.T) {
	l := newHandlerList()
	a, b, c := types.NewReceiverID(), types.NewReceiverID(), types.NewReceiverID()

	var calls []string
	l.add(a, funcHandler(func(pkgif.Event) {
		calls = append(calls, "a")
		l.remove(b)

		// 分发中：墓碑尚未清理
		assert.Len(t, l.order, 3)
		assert.Nil(t, l.order[1])
		assert.True(t, l.needsCleanUp)
	}))
	l.add(b, funcHandler(func(pkgif.Event) { calls = append(calls, "b") }))
	l.add(c, funcHandler(func(pkgif.Event) { calls = append(calls, "c") }))

	invoked, _ := l.dispatch(&tickEvent{})
	assert.Equal(t, 2, invoked)
	assert.Equal(t, []string{"a", "c"}, calls)

	// 分发结束后墓碑被清理
	assert.Len(t, l.order, 2)
	assert.False(t, l.needsCleanUp)
	assert.False(t, l.executing())
	assertListInvariant(t, l)
}

// TestHandlerList_RemoveSelfDuringDispatch 测试处理器删除自己
func TestHandlerList_RemoveSelfDuringDispatch(t *testing.T) {
	l := newHandlerList()
	a, b := types.NewReceiverID(), types.NewReceiverID()

	var calls []string
	l.add(a, funcHandler(func(pkgif.Event) {
		calls = append(calls, "a")
		l.remove(a)
	}))
	l.add(b, funcHandler(func(pkgif.Event) { calls = append(calls, "b") }))

	l.dispatch(&tickEvent{})
	l.dispatch(&tickEvent{})

	assert.Equal(t, []string{"a", "b", "b"}, calls)
	assertListInvariant(t, l)
}

// TestHandlerList_AddDuringDispatch 测试分发中追加的处理器本轮被调用
func TestHandlerList_AddDuringDispatch(t *testing.T) {
	l := newHandlerList()
	a, b := types.NewReceiverID(), types.NewReceiverID()

	var calls []string
	l.add(a, funcHandler(func(pkgif.Event) {
		calls = append(calls, "a")
		l.add(b, funcHandler(func(pkgif.Event) { calls = append(calls, "b") }))
	}))

	invoked, _ := l.dispatch(&tickEvent{})
	assert.Equal(t, 2, invoked)
	assert.Equal(t, []string{"a", "b"}, calls)
	assertListInvariant(t, l)
}

// TestHandlerList_RemoveAndReAddDuringDispatch 测试分发中删除后重新添加
func TestHandlerList_RemoveAndReAddDuringDispatch(t *testing.T) {
	l := newHandlerList()
	a, b := types.NewReceiverID(), types.NewReceiverID()

	var calls []string
	bh := funcHandler(func(pkgif.Event) { calls = append(calls, "b") })
	l.add(a, funcHandler(func(pkgif.Event) {
		calls = append(calls, "a")
		if l.remove(b) {
			l.add(b, bh)
		}
	}))
	l.add(b, bh)

	l.dispatch(&tickEvent{})

	// b 被移到末尾，本轮仍被调用一次
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Equal(t, 2, l.len())
	assertListInvariant(t, l)
}

// TestHandlerList_NestedDispatch 测试嵌套分发只在最外层清理
func TestHandlerList_NestedDispatch(t *testing.T) {
	l := newHandlerList()
	a, b, c := types.NewReceiverID(), types.NewReceiverID(), types.NewReceiverID()

	var calls []string
	nested := false
	l.add(a, funcHandler(func(pkgif.Event) {
		calls = append(calls, "a")
		if nested {
			return
		}
		nested = true
		l.dispatch(&tickEvent{})

		// 内层分发结束，外层仍在执行
		assert.True(t, l.executing())
		assert.Len(t, l.order, 3)
	}))
	l.add(b, funcHandler(func(pkgif.Event) {
		calls = append(calls, "b")
		l.remove(c)
	}))
	l.add(c, funcHandler(func(pkgif.Event) { calls = append(calls, "c") }))

	l.dispatch(&tickEvent{})

	assert.Equal(t, []string{"a", "a", "b", "b"}, calls)
	assert.False(t, l.executing())
	assert.Len(t, l.order, 2)
	assertListInvariant(t, l)
}

// TestHandlerList_DispatchPanic 测试处理器 panic 后状态恢复
func TestHandlerList_DispatchPanic(t *testing.T) {
	l := newHandlerList()
	a, b := types.NewReceiverID(), types.NewReceiverID()

	l.add(a, funcHandler(func(pkgif.Event) {
		l.remove(b)
		panic("boom")
	}))
	l.add(b, funcHandler(func(pkgif.Event) {}))

	assert.Panics(t, func() { l.dispatch(&tickEvent{}) })

	assert.False(t, l.executing())
	assert.False(t, l.needsCleanUp)
	assert.Len(t, l.order, 1)
	assertListInvariant(t, l)
}

// TestHandlerList_Clear 测试清空
func TestHandlerList_Clear(t *testing.T) {
	l := newHandlerList()
	for i := 0; i < 3; i++ {
		l.add(types.NewReceiverID(), funcHandler(func(pkgif.Event) {}))
	}

	l.clear()

	assert.Equal(t, 0, l.len())
	assert.Empty(t, l.order)
	invoked, _ := l.dispatch(&tickEvent{})
	assert.Equal(t, 0, invoked)
}

// TestHandlerList_ClearDuringDispatch 测试分发中清空
func TestHandlerList_ClearDuringDispatch(t *testing.T) {
	l := newHandlerList()

	var calls []string
	l.add(types.NewReceiverID(), funcHandler(func(pkgif.Event) {
		calls = append(calls, "a")
		l.clear()
	}))
	l.add(types.NewReceiverID(), funcHandler(func(pkgif.Event) { calls = append(calls, "b") }))

	l.dispatch(&tickEvent{})

	assert.Equal(t, []string{"a"}, calls)
	assert.Equal(t, 0, l.len())
	assertListInvariant(t, l)
}
