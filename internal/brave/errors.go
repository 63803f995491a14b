package brave

import "errors"

// ErrKind 错误类别标签
type ErrKind int

const (
	// ErrValidation 参数校验失败（未消耗速率配额）
	ErrValidation ErrKind = iota
	// ErrRateLimited 触发每秒或月度速率上限
	ErrRateLimited
	// ErrTransport 网络层故障（超时、连接拒绝、DNS失败等）
	ErrTransport
	// ErrUpstream 上游返回非2xx状态码
	ErrUpstream
)

// Error 带类别标签的工具错误，始终作为返回值传递，
// 由工具层转换为MCP协议的错误表示
type Error struct {
	Kind    ErrKind
	Message string
	Status  int // 仅ErrUpstream时有效
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// IsKind 判断err链上是否存在指定类别的*Error
func IsKind(err error, kind ErrKind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == kind
}
