package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 传输模式
const (
	TransportSSE   = "sse"
	TransportStdio = "stdio"
)

// 环境变量默认值
const (
	defaultTransport = TransportSSE
	defaultHost      = "0.0.0.0"
	defaultPort      = "8053"
)

// AppConfig 应用整体配置（全部来自环境变量）
type AppConfig struct {
	BraveAPIKey string // BRAVE_API_KEY（必填）
	Transport   string // TRANSPORT：sse 或 stdio
	Host        string // HOST（仅sse模式）
	Port        string // PORT（仅sse模式）
	CORSOrigin  string // BRAVE_CORS_ORIGIN：非空时为SSE端点启用CORS
}

// Load 加载配置（存在.env文件时先载入）
func Load() (*AppConfig, error) {
	// .env不存在时忽略错误
	_ = godotenv.Load()

	cfg := &AppConfig{
		BraveAPIKey: os.Getenv("BRAVE_API_KEY"),
		Transport:   getEnv("TRANSPORT", defaultTransport),
		Host:        getEnv("HOST", defaultHost),
		Port:        getEnv("PORT", defaultPort),
		CORSOrigin:  os.Getenv("BRAVE_CORS_ORIGIN"),
	}

	if cfg.BraveAPIKey == "" {
		return nil, fmt.Errorf("BRAVE_API_KEY environment variable is required")
	}
	if cfg.Transport != TransportSSE && cfg.Transport != TransportStdio {
		return nil, fmt.Errorf("invalid TRANSPORT %q: must be %q or %q", cfg.Transport, TransportSSE, TransportStdio)
	}
	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	return cfg, nil
}

// Addr 返回SSE模式的监听地址
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
