package websearch

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/DevRico003/brave-search-mcp/internal/brave"
	tol "github.com/DevRico003/brave-search-mcp/internal/tool"
)

const toolName = "brave_web_search"

// WebSearchTool 网页搜索工具实现（Brave Web Search API）
type WebSearchTool struct {
	client *brave.Client
	logger *zap.Logger
}

// New 构造函数（实现tool.Constructor）
func New(ctx context.Context, deps tol.Dependencies) (tol.Tool, error) {
	if deps.Brave == nil {
		return nil, fmt.Errorf("brave client is required for web search tool")
	}
	return &WebSearchTool{
		client: deps.Brave,
		logger: deps.Logger,
	}, nil
}

// GetDescriptor 实现工具接口
func (t *WebSearchTool) GetDescriptor() *mcp.Tool {
	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Performs a web search using the Brave Search API. "+
			"Ideal for general queries, news, articles, and online content. "+
			"Use this for broad information gathering, recent events, or when you need diverse web sources."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query (max 400 chars, 50 words)")),
		mcp.WithNumber("count", mcp.Description("Number of results (1-20, default 10)")),
		mcp.WithNumber("offset", mcp.Description("Pagination offset (max 9, default 0)")),
	)
	return &tool
}

// Execute 实现工具接口：参数校验 → 速率检查与上游调用 → 格式化文本
func (t *WebSearchTool) Execute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("invalid arguments: expected an object"), nil
	}

	query, _ := args["query"].(string)
	q, err := brave.NormalizeWebQuery(query, intArg(args, "count"), intArg(args, "offset"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := t.client.WebSearch(ctx, q)
	if err != nil {
		t.logger.Error("网页搜索失败", zap.String("query", q.Query), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// Name 实现工具接口
func (t *WebSearchTool) Name() string {
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
