package config

import "errors"

// 配置错误定义
var (
	ErrEmptyAppName     = errors.New("app name is empty")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)
