package eventmanager

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventmanager/config"
	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
	"github.com/dep2p/go-eventmanager/pkg/lib/log"
)

var logger = log.Logger("eventmanager")

// ════════════════════════════════════════════════════════════════════════════
//                              Runtime
// ════════════════════════════════════════════════════════════════════════════

// Runtime 由 Fx 组装的事件总线运行时
//
// 持有配置、指标与总线。Runtime 自身的生命周期方法可以并发调用，
// 但 Bus() 返回的总线仍然只能在单个 goroutine 上使用。
type Runtime struct {
	mu sync.Mutex

	config *config.Config
	app    *fx.App
	bus    *Bus

	started bool
	closed  bool
}

// New 创建运行时但不启动
//
// 示例：
//
//	rt, err := eventmanager.New(ctx,
//	    eventmanager.WithSlowDispatchThreshold(config.Duration(10*time.Millisecond)),
//	)
func New(_ context.Context, opts ...Option) (*Runtime, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	if err := applyLogConfig(o.config.Log); err != nil {
		return nil, fmt.Errorf("configure log: %w", err)
	}

	rt := &Runtime{config: o.config}

	app, err := buildFxApp(o, rt)
	if err != nil {
		return nil, err
	}
	rt.app = app

	return rt, nil
}

// Start 快捷启动函数
//
// 等价于 New() + Runtime.Start()。
func Start(ctx context.Context, opts ...Option) (*Runtime, error) {
	rt, err := New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if err := rt.Start(ctx); err != nil {
		return nil, fmt.Errorf("start runtime: %w", err)
	}

	return rt, nil
}

// Start 启动运行时
func (rt *Runtime) Start(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return ErrRuntimeClosed
	}
	if rt.started {
		return ErrAlreadyStarted
	}

	if err := rt.app.Start(ctx); err != nil {
		logger.Error("启动运行时失败", "error", err)
		return fmt.Errorf("start fx app: %w", err)
	}

	rt.started = true
	logger.Info("运行时已启动",
		"metrics", rt.config.Metrics.Enabled,
		"slowDispatchThreshold", rt.config.Bus.SlowDispatchThreshold.String())
	return nil
}

// Stop 停止运行时
//
// 停止时总线被清空：所有处理器与待执行动作都会丢弃。
// Fx 应用停止后不能再次启动，停止的运行时即为已关闭；需要新的总线时重新 Start。
func (rt *Runtime) Stop(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return ErrRuntimeClosed
	}
	if !rt.started {
		return ErrNotStarted
	}

	rt.closed = true
	return rt.stopLocked(ctx)
}

// Close 停止并关闭运行时，可以多次调用
func (rt *Runtime) Close() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil
	}

	var err error
	if rt.started {
		err = rt.stopLocked(context.Background())
	}
	rt.closed = true
	return err
}

// applyLogConfig 应用日志配置，未设置的字段保留环境变量的设置
func applyLogConfig(cfg config.LogConfig) error {
	if cfg.Level != "" {
		if err := log.SetLevels(cfg.Level); err != nil {
			return err
		}
	}
	if cfg.Format != "" {
		if err := log.SetFormat(cfg.Format); err != nil {
			return err
		}
	}
	return nil
}

func (rt *Runtime) stopLocked(ctx context.Context) error {
	rt.started = false
	if err := rt.app.Stop(ctx); err != nil {
		logger.Error("停止运行时失败", "error", err)
		return fmt.Errorf("stop fx app: %w", err)
	}
	logger.Info("运行时已停止")
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              访问器
// ════════════════════════════════════════════════════════════════════════════

// Bus 返回运行时的总线
func (rt *Runtime) Bus() *Bus {
	return rt.bus
}

// EventManager 以接口形式返回总线
func (rt *Runtime) EventManager() pkgif.EventManager {
	return rt.bus
}

// Config 返回运行时配置的副本
func (rt *Runtime) Config() *config.Config {
	return config.CloneConfig(rt.config)
}

// IsStarted 是否已启动
func (rt *Runtime) IsStarted() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.started
}
