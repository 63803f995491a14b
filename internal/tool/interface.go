package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/DevRico003/brave-search-mcp/internal/brave"
)

// Tool 工具接口定义
type Tool interface {
	// GetDescriptor 返回工具描述信息（MCP元数据）
	GetDescriptor() *mcp.Tool
	// Execute 执行工具逻辑
	Execute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

	// Name 返回工具唯一标识
	Name() string
}

// Dependencies 公共依赖集合
type Dependencies struct {
	Brave  *brave.Client // 共享的Brave搜索客户端
	Logger *zap.Logger
}

// Constructor 工具构造函数类型（用于依赖注入）
type Constructor func(ctx context.Context, deps Dependencies) (Tool, error)
