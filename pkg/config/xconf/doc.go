// Package xconf 提供任务执行栈的类型化配置：加载、校验与热更新。
//
// 配置源为 YAML 或 JSON 文件（或内存字节），通过 koanf 解析为
// Config 结构体。Load / LoadBytes 返回 Loader，Loader.Config()
// 产出带默认值、已通过校验的配置快照。
//
// # 配置结构
//
//	executor:
//	  name: orders
//	  workers: 8
//	  queue_capacity: 1024
//	  shutdown_grace: 30s
//	  drain_on_shutdown: true
//	retry:
//	  attempts: 3
//	  delay: 100ms
//	  max_delay: 2s
//	breaker:
//	  max_requests: 5
//	  interval: 60s
//	  timeout: 30s
//	  failure_threshold: 5
//	cron:
//	  jobs:
//	    - name: cleanup
//	      spec: "0 3 * * *"
//	      timeout: 10m
//
// # 热更新
//
// Watch 监视配置文件变更（含编辑器原子写入的 rename 模式），防抖
// 后重载并以新的 Config 快照回调。重载失败时旧配置保持有效，错误
// 通过回调传出。
//
// # 使用方式
//
//	loader, err := xconf.Load("/etc/taskx/config.yaml")
//	if err != nil { ... }
//	cfg, err := loader.Config()
//	if err != nil { ... }
//	exec, err := xexec.New[int](cfg.Executor.Workers,
//	    xexec.WithName(cfg.Executor.Name),
//	    xexec.WithQueueCapacity(cfg.Executor.QueueCapacity))
package xconf
