package eventbus

import (
	"context"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventmanager/config"
	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params 总线依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
	Observer   pkgif.Observer `optional:"true"`
	Clock      clock.Clock    `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Bus          *Bus
	EventManager pkgif.EventManager
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("eventbus",
		fx.Provide(ProvideEventBus),
		fx.Invoke(registerLifecycle),
	)
}

// ConfigFromUnified 从统一配置取总线配置
func ConfigFromUnified(cfg *config.Config) config.BusConfig {
	if cfg == nil {
		return config.DefaultBusConfig()
	}
	return cfg.Bus
}

// ProvideEventBus 提供 Bus 实例
func ProvideEventBus(p Params) Result {
	cfg := ConfigFromUnified(p.UnifiedCfg)

	bus := NewBus(
		WithObserver(p.Observer),
		WithClock(p.Clock),
		WithSlowDispatchThreshold(cfg.SlowDispatchThreshold.Std()),
		WithTrace(cfg.TraceDispatch),
	)

	return Result{
		Bus:          bus,
		EventManager: bus,
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC  fx.Lifecycle
	Bus *Bus
}

// registerLifecycle 注册生命周期
//
// 停止时清空全部处理器和待执行动作。
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pending := input.Bus.PendingActions()
			input.Bus.Reset()
			if pending > 0 {
				logger.Debug("停止时丢弃待执行动作", "count", pending)
			}
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "eventbus"
	// Description 模块描述
	Description = "同步事件总线模块，按事件类型有序分发并支持延迟动作"
)
