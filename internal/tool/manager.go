package tool

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/server"
)

// ToolManager 工具管理器
type ToolManager struct {
	tools        map[string]Tool
	constructors map[string]Constructor
	deps         Dependencies
	mu           sync.RWMutex
}

// NewToolManager 创建工具管理器实例
func NewToolManager(deps Dependencies) *ToolManager {
	return &ToolManager{
		tools:        make(map[string]Tool),
		constructors: make(map[string]Constructor),
		deps:         deps,
	}
}

// Register 注册工具构造函数（启动时调用）
func (m *ToolManager) Register(name string, constructor Constructor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.constructors[name] = constructor
}

// InitTools 初始化所有注册的工具
func (m *ToolManager) InitTools(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for toolName, constructor := range m.constructors {
		tool, err := constructor(ctx, m.deps)
		if err != nil {
			return fmt.Errorf("failed to initialize tool %s: %w", toolName, err)
		}
		m.tools[toolName] = tool
	}
	return nil
}

// GetTool 按名称获取已初始化的工具
func (m *ToolManager) GetTool(name string) (Tool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tool, ok := m.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool %s not found", name)
	}
	return tool, nil
}

// RegisterToServer 将所有工具注册到MCP服务器
func (m *ToolManager) RegisterToServer(svr *server.MCPServer) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, tool := range m.tools {
		svr.AddTool(*tool.GetDescriptor(), tool.Execute)
	}
}
