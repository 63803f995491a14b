package ratelimit

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Brave API免费套餐的速率上限
const (
	PerSecond = 1     // 每秒请求数上限
	PerMonth  = 15000 // 每自然月请求数上限
)

// 超出速率上限时返回的错误（错误信息指明触发的是哪个上限）
var (
	ErrPerSecond = errors.New("rate limit exceeded: at most 1 request per second")
	ErrMonthly   = errors.New("rate limit exceeded: monthly quota of 15000 requests reached")
)

// Limiter 速率限制器：同时跟踪每秒令牌与月度计数，
// 进程内唯一实例，所有检查与计数更新在同一把锁内完成
type Limiter struct {
	mu         sync.Mutex
	second     *rate.Limiter
	monthCount int
	monthStart time.Time
	now        func() time.Time // 可注入时钟（测试用）
}

// New 创建速率限制器实例（进程启动时调用一次）
func New() *Limiter {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		second:     rate.NewLimiter(rate.Every(time.Second), PerSecond),
		monthStart: monthOf(now()),
		now:        now,
	}
}

// Authorize 原子地检查并占用一个请求配额。
// 返回nil表示本次调用被放行并已计入配额；配额一旦占用不会回滚，
// 即使后续上游请求失败或被取消。
func (l *Limiter) Authorize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// 跨入新自然月时重置月度计数
	if month := monthOf(now); month.After(l.monthStart) {
		l.monthStart = month
		l.monthCount = 0
	}

	if l.monthCount >= PerMonth {
		return ErrMonthly
	}
	if !l.second.AllowN(now, 1) {
		return ErrPerSecond
	}

	l.monthCount++
	return nil
}

// monthOf 返回t所在自然月的起点
func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
