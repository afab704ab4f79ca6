// Package types 定义事件管理器的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在总线、接收者和宿主代码之间传递数据。
//
// # 文件组织
//
//   - ids.go     - ReceiverID 接收者标识
//   - events.go  - EventBase 事件基础结构（handled 标记）
//   - errors.go  - 公共错误定义
//
// # 事件约定
//
// 具体事件类型嵌入 EventBase，并以指针形式发布：
//
//	type Tick struct {
//	    types.EventBase
//	    Frame int
//	}
//
//	bus.Publish(&Tick{Frame: 1})
//
// 路由依据是发布值的精确动态类型（*Tick），不做任何"is-a"匹配。
package types
