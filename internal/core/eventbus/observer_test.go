package eventbus

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/interfaces/mocks"
)

// ============================================================================
// Observer 上报测试
// ============================================================================

// TestObserver_Publish 测试发布结果上报
func TestObserver_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)
	mock := clock.NewMock()

	bus := NewBus(WithObserver(obs), WithClock(mock))

	gomock.InOrder(
		obs.EXPECT().ObserveReceivers(1),
		obs.EXPECT().ObserveReceivers(2),
	)
	Subscribe(bus, NewReceiver(bus), func(*tickEvent) {
		mock.Add(3 * time.Millisecond)
	})
	Subscribe(bus, NewReceiver(bus), func(*tickEvent) {})

	obs.EXPECT().ObservePublish("*eventbus.tickEvent", 2, false, 3*time.Millisecond)
	bus.Publish(&tickEvent{})
}

// TestObserver_ShortCircuit 测试短路上报
func TestObserver_ShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)

	obs.EXPECT().ObserveReceivers(gomock.Any()).AnyTimes()

	bus := NewBus(WithObserver(obs), WithClock(clock.NewMock()))
	Subscribe(bus, NewReceiver(bus), func(e *tickEvent) { e.MarkHandled() })
	Subscribe(bus, NewReceiver(bus), func(*tickEvent) {})

	obs.EXPECT().ObservePublish("*eventbus.tickEvent", 1, true, time.Duration(0))
	bus.Publish(&tickEvent{})
}

// TestObserver_Actions 测试动作队列上报
func TestObserver_Actions(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)

	bus := NewBus(WithObserver(obs), WithClock(clock.NewMock()))
	bus.Schedule(func() {})
	bus.Schedule(func() {})
	ScheduleOn[*otherEvent](bus, func() {})

	gomock.InOrder(
		obs.EXPECT().ObserveActions(pkgif.ActionQueueUrgent, 2),
		obs.EXPECT().ObserveActions(pkgif.ActionQueueScheduled, 1),
		obs.EXPECT().ObservePublish("*eventbus.otherEvent", 0, false, gomock.Any()),
	)
	bus.Publish(&otherEvent{})

	// 队列为空时不上报动作
	obs.EXPECT().ObservePublish("*eventbus.otherEvent", 0, false, gomock.Any())
	bus.Publish(&otherEvent{})
}

// TestObserver_Receivers 测试接收者数量上报
func TestObserver_Receivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)

	bus := NewBus(WithObserver(obs))
	r := NewReceiver(bus)

	// 第一个类型订阅时上报，第二个类型不再上报
	obs.EXPECT().ObserveReceivers(1).Times(1)
	Subscribe(bus, r, func(*tickEvent) {})
	Subscribe(bus, r, func(*otherEvent) {})
	Subscribe(bus, r, func(*otherEvent) {})

	// 只有最后一个类型取消时才上报
	Unsubscribe[*tickEvent](bus, r)
	obs.EXPECT().ObserveReceivers(0).Times(1)
	Unsubscribe[*otherEvent](bus, r)

	obs.EXPECT().ObserveReceivers(1)
	Subscribe(bus, r, func(*tickEvent) {})
	obs.EXPECT().ObserveReceivers(0)
	bus.UnsubscribeAll(r)

	// 空操作不上报
	bus.UnsubscribeAll(r)
	Unsubscribe[*tickEvent](bus, r)

	obs.EXPECT().ObserveReceivers(0)
	bus.Reset()
}

// TestObserver_SlowDispatch 测试慢发布阈值
func TestObserver_SlowDispatch(t *testing.T) {
	mock := clock.NewMock()
	bus := NewBus(
		WithClock(mock),
		WithSlowDispatchThreshold(10*time.Millisecond),
		WithTrace(true),
	)

	Subscribe(bus, NewReceiver(bus), func(*tickEvent) {
		mock.Add(20 * time.Millisecond)
	})

	assert.NotPanics(t, func() { bus.Publish(&tickEvent{}) })
	assert.Equal(t, 10*time.Millisecond, bus.slowThreshold)
	assert.True(t, bus.trace)
}

// TestOptions_IgnoreInvalid 测试无效选项被忽略
func TestOptions_IgnoreInvalid(t *testing.T) {
	bus := NewBus(
		WithObserver(nil),
		WithClock(nil),
		WithSlowDispatchThreshold(-time.Second),
	)

	assert.Equal(t, pkgif.NopObserver{}, bus.observer)
	assert.NotNil(t, bus.clock)
	assert.Equal(t, time.Duration(0), bus.slowThreshold)
}
