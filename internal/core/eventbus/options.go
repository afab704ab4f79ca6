package eventbus

import (
	"time"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
)

// Option 总线选项
type Option func(*Bus)

// WithObserver 设置观察者（指标上报）
func WithObserver(o pkgif.Observer) Option {
	return func(b *Bus) {
		if o != nil {
			b.observer = o
		}
	}
}

// WithClock 设置计时时钟，测试中可注入 clock.NewMock()
func WithClock(c clock.Clock) Option {
	return func(b *Bus) {
		if c != nil {
			b.clock = c
		}
	}
}

// WithSlowDispatchThreshold 设置慢发布告警阈值，0 表示关闭
func WithSlowDispatchThreshold(d time.Duration) Option {
	return func(b *Bus) {
		if d >= 0 {
			b.slowThreshold = d
		}
	}
}

// WithTrace 开启后每次发布输出一条 debug 日志
func WithTrace(enabled bool) Option {
	return func(b *Bus) {
		b.trace = enabled
	}
}
