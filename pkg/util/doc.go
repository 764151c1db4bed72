// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xid: 任务 ID 生成器，sonyflake 为主、UUID 兜底
//
// 设计原则：
//   - 生成路径永不失败，降级透明
//   - 并发安全，可全局共享
package util
