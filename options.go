package eventmanager

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventmanager/config"
)

// Option 运行时配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// config 统一配置
	config *config.Config

	// registerer 指标注册器，nil 表示不导出
	registerer prometheus.Registerer

	// clock 计时时钟
	clock clock.Clock

	// userFxOptions 用户自定义 Fx 选项
	userFxOptions []fx.Option
}

func newOptions() *options {
	return &options{
		config: config.NewConfig(),
	}
}

// WithConfig 使用完整配置
//
// 配置在 New 中验证；cfg 会被复制，之后的修改不影响运行时。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config is nil")
		}
		o.config = config.CloneConfig(cfg)
		return nil
	}
}

// WithConfigJSON 从 JSON 加载配置
func WithConfigJSON(data []byte) Option {
	return func(o *options) error {
		cfg, err := config.FromJSON(data)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		o.config = cfg
		return nil
	}
}

// WithSlowDispatchThreshold 设置慢发布告警阈值
func WithSlowDispatchThreshold(d config.Duration) Option {
	return func(o *options) error {
		o.config.Bus.SlowDispatchThreshold = d
		return nil
	}
}

// WithTraceDispatch 每次发布输出一条 debug 日志
func WithTraceDispatch(enabled bool) Option {
	return func(o *options) error {
		o.config.Bus.TraceDispatch = enabled
		return nil
	}
}

// WithMetrics 启用或关闭指标
func WithMetrics(enabled bool) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = enabled
		return nil
	}
}

// WithLogLevel 设置日志级别，格式同 EVENTMGR_LOG_LEVEL
//
// 示例: "core/eventbus=debug,info"
func WithLogLevel(spec string) Option {
	return func(o *options) error {
		o.config.Log.Level = spec
		return nil
	}
}

// WithPrometheusRegisterer 把总线指标注册到 reg
//
// 启动时注册，停止时注销。
func WithPrometheusRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) error {
		if reg == nil {
			return errors.New("prometheus registerer is nil")
		}
		o.registerer = reg
		return nil
	}
}

// WithClock 设置总线计时时钟，测试中可注入 clock.NewMock()
func WithClock(c clock.Clock) Option {
	return func(o *options) error {
		if c == nil {
			return errors.New("clock is nil")
		}
		o.clock = c
		return nil
	}
}

// WithFxOptions 追加用户自定义 Fx 选项
//
// 可以用 fx.Invoke 在启动时订阅事件：
//
//	eventmanager.WithFxOptions(fx.Invoke(func(bus *eventbus.Bus) { ... }))
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
