package localsearch

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/DevRico003/brave-search-mcp/internal/brave"
	tol "github.com/DevRico003/brave-search-mcp/internal/tool"
)

const toolName = "brave_local_search"

// LocalSearchTool 本地商户搜索工具实现（Brave Local Search API）
type LocalSearchTool struct {
	client *brave.Client
	logger *zap.Logger
}

// New 构造函数（实现tool.Constructor）
func New(ctx context.Context, deps tol.Dependencies) (tol.Tool, error) {
	if deps.Brave == nil {
		return nil, fmt.Errorf("brave client is required for local search tool")
	}
	return &LocalSearchTool{
		client: deps.Brave,
		logger: deps.Logger,
	}, nil
}

// GetDescriptor 实现工具接口
func (t *LocalSearchTool) GetDescriptor() *mcp.Tool {
	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Searches for local businesses and places using Brave's Local Search API. "+
			"Best for queries related to physical locations, businesses, restaurants, services, etc. "+
			"Returns detailed information including business names, addresses, ratings, phone numbers and opening hours. "+
			"Automatically falls back to web search if no local results are found."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Local search query (e.g. 'pizza near Central Park')")),
		mcp.WithNumber("count", mcp.Description("Number of results (1-20, default 5)")),
	)
	return &tool
}

// Execute 实现工具接口：参数校验 → 速率检查与两段式上游调用 → 格式化文本
func (t *LocalSearchTool) Execute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("invalid arguments: expected an object"), nil
	}

	query, _ := args["query"].(string)
	q, err := brave.NormalizeLocalQuery(query, intArg(args, "count"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := t.client.LocalSearch(ctx, q)
	if err != nil {
		t.logger.Error("本地搜索失败", zap.String("query", q.Query), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// Name 实现工具接口
func (t *LocalSearchTool) Name() string {
	return toolName
}

// intArg 提取整数参数（JSON数字反序列化为float64）
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
