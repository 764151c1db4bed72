package xconf

import "errors"

// 配置加载、解析与校验相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示配置加载失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")

	// ErrInvalidConfig 表示配置值未通过校验。
	ErrInvalidConfig = errors.New("xconf: invalid config")

	// ErrBytesReload 表示从字节数据创建的 Loader 不支持重载。
	ErrBytesReload = errors.New("xconf: cannot reload config created from bytes")

	// ErrBytesWatch 表示从字节数据创建的 Loader 不支持监视。
	ErrBytesWatch = errors.New("xconf: cannot watch config created from bytes")
)
