package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventmanager/config"
	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/lib/log"
)

var logger = log.Logger("core/metrics")

// Params Metrics 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config        `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
	Lifecycle  fx.Lifecycle
}

// Result Metrics 模块输出
type Result struct {
	fx.Out

	Observer pkgif.Observer
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(ProvideObserver),
)

// ConfigFromUnified 从统一配置取指标配置
func ConfigFromUnified(cfg *config.Config) config.MetricsConfig {
	if cfg == nil {
		return config.DefaultMetricsConfig()
	}
	return cfg.Metrics
}

// ProvideObserver 根据配置提供 Observer
//
// 指标关闭时返回 NopObserver。
func ProvideObserver(p Params) Result {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if !cfg.Enabled {
		return Result{Observer: pkgif.NopObserver{}}
	}

	c := NewCollector(cfg.Namespace, cfg.Subsystem)

	if p.Registerer != nil {
		reg := p.Registerer
		p.Lifecycle.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				if err := reg.Register(c); err != nil {
					return err
				}
				logger.Debug("指标已注册", "namespace", cfg.Namespace, "subsystem", cfg.Subsystem)
				return nil
			},
			OnStop: func(_ context.Context) error {
				reg.Unregister(c)
				return nil
			},
		})
	}

	return Result{Observer: c}
}
