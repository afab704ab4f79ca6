package eventmanager

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-eventmanager/internal/core/eventbus"
	"github.com/dep2p/go-eventmanager/internal/core/metrics"
	"github.com/dep2p/go-eventmanager/pkg/lib/log"
)

var fxLogger = log.Logger("eventmanager/fx")

// buildFxApp 构建 Fx 应用
//
// 加载顺序（按依赖）：
//  1. 配置注入
//  2. 指标（提供 Observer）
//  3. 事件总线（依赖配置、Observer、时钟）
//  4. 用户自定义选项
func buildFxApp(o *options, rt *Runtime) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		fx.Supply(o.config),
	}

	if reg := o.registerer; reg != nil {
		modules = append(modules, fx.Provide(func() prometheus.Registerer { return reg }))
	}
	if clk := o.clock; clk != nil {
		modules = append(modules, fx.Provide(func() clock.Clock { return clk }))
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 核心模块
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		metrics.Module,
		eventbus.Module(),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 3. 用户自定义选项
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, o.userFxOptions...)

	modules = append(modules,
		fx.Populate(&rt.bus),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		fxLogger.Error("构建 Fx 应用失败", "error", err)
		return nil, fmt.Errorf("build fx app: %w", err)
	}

	return app, nil
}
