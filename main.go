package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/DevRico003/brave-search-mcp/config"
	"github.com/DevRico003/brave-search-mcp/internal/brave"
	"github.com/DevRico003/brave-search-mcp/internal/log"
	"github.com/DevRico003/brave-search-mcp/internal/ratelimit"
	"github.com/DevRico003/brave-search-mcp/internal/tool"
	"github.com/DevRico003/brave-search-mcp/internal/tools/localsearch"
	"github.com/DevRico003/brave-search-mcp/internal/tools/websearch"
)

const (
	serverName    = "mcp-brave-search"
	serverVersion = "1.0.0"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "加载配置失败:", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	log.Init(cfg.Transport == config.TransportStdio)
	logger := log.GetLogger()
	defer logger.Sync()
	logger.Info("配置加载成功", zap.String("transport", cfg.Transport))

	// 3. 初始化速率限制器与Brave客户端（进程内唯一实例）
	limiter := ratelimit.New()
	braveClient, err := brave.NewClient(cfg.BraveAPIKey, limiter, logger)
	if err != nil {
		logger.Fatal("创建Brave客户端失败", zap.Error(err))
	}

	// 4. 初始化工具管理器
	toolManager := tool.NewToolManager(tool.Dependencies{
		Brave:  braveClient,
		Logger: logger,
	})
	toolManager.Register("brave_web_search", websearch.New)
	toolManager.Register("brave_local_search", localsearch.New)
	if err := toolManager.InitTools(context.Background()); err != nil {
		logger.Fatal("初始化工具失败", zap.Error(err))
	}

	// 5. 启动MCP服务器
	svr := server.NewMCPServer(serverName, serverVersion)
	toolManager.RegisterToServer(svr)

	if cfg.Transport == config.TransportStdio {
		logger.Info("MCP服务以stdio模式启动")
		if err := server.ServeStdio(svr); err != nil {
			logger.Fatal("stdio服务异常退出", zap.Error(err))
		}
		return
	}

	// 6. SSE模式：协议流量的收发由mcp-go运行时处理
	sseServer := server.NewSSEServer(svr,
		server.WithBaseURL(fmt.Sprintf("http://%s", cfg.Addr())))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	var handler http.Handler = mux
	if cfg.CORSOrigin != "" {
		handler = cors.New(cors.Options{
			AllowedOrigins: []string{cfg.CORSOrigin},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"*"},
		}).Handler(mux)
	}

	logger.Info("MCP服务以SSE模式启动", zap.String("addr", cfg.Addr()))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal("启动服务器失败", zap.Error(err))
	}
}
