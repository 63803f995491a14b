package localsearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DevRico003/brave-search-mcp/internal/brave"
	"github.com/DevRico003/brave-search-mcp/internal/ratelimit"
	tol "github.com/DevRico003/brave-search-mcp/internal/tool"
)

func newTestTool(t *testing.T, handler http.Handler) tol.Tool {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := brave.NewClient("test-key", ratelimit.New(), zap.NewNop(), brave.WithBaseURL(srv.URL))
	require.NoError(t, err)

	tool, err := New(context.Background(), tol.Dependencies{Brave: client, Logger: zap.NewNop()})
	require.NoError(t, err)
	return tool
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return content.Text
}

func TestExecute(t *testing.T) {
	tool := newTestTool(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/web/search":
			assert.Equal(t, "5", r.URL.Query().Get("count"))
			fmt.Fprint(w, `{"locations":{"results":[{"id":"loc-1"}]}}`)
		case "/local/pois":
			fmt.Fprint(w, `{"results":[{"id":"loc-1","name":"Joe's Pizza","phone":"+12122551946"}]}`)
		case "/local/descriptions":
			fmt.Fprint(w, `{"descriptions":{"loc-1":"Classic NYC slice joint."}}`)
		}
	}))

	result, err := tool.Execute(context.Background(), callRequest(map[string]any{
		"query": "pizza near Central Park",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "Name: Joe's Pizza")
	assert.Contains(t, text, "Description: Classic NYC slice joint.")
}

func TestExecuteFallbackToWebSearch(t *testing.T) {
	tool := newTestTool(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/web/search", r.URL.Path)
		if r.URL.Query().Get("result_filter") == "locations" {
			fmt.Fprint(w, `{"locations":{"results":[]}}`)
			return
		}
		fmt.Fprint(w, `{"web":{"results":[{"title":"Pizza guide","description":"Best pizza near Central Park","url":"https://example.com"}]}}`)
	}))

	result, err := tool.Execute(context.Background(), callRequest(map[string]any{
		"query": "pizza near Central Park",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t,
		"Title: Pizza guide\nDescription: Best pizza near Central Park\nURL: https://example.com",
		resultText(t, result))
}

func TestExecuteValidationError(t *testing.T) {
	tool := newTestTool(t, http.NotFoundHandler())

	result, err := tool.Execute(context.Background(), callRequest(map[string]any{"query": "   "}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "query must not be empty")
}

func TestExecuteRateLimited(t *testing.T) {
	tool := newTestTool(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"locations":{"results":[]},"web":{"results":[]}}`)
	}))

	result, err := tool.Execute(context.Background(), callRequest(map[string]any{"query": "coffee"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	// 1秒内的第二次调用命中每秒速率上限
	result, err = tool.Execute(context.Background(), callRequest(map[string]any{"query": "coffee"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "rate limit exceeded")
}
