// Package interfaces 定义事件管理器的公共接口
//
// 接口文件：
//   - eventbus.go  - Event、Identity、EventManager 接口
//   - metrics.go   - Observer 观察者接口
//
// 实现位于 internal/core/eventbus（总线）与 internal/core/metrics（Prometheus 观察者）。
// 测试替身位于 mocks 子包，由 mockgen 生成。
package interfaces
