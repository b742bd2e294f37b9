// Package circuitbreaker 熔断器
//
// 三种状态：
//   - CLOSED：请求正常通过，统计失败次数，达到阈值转为OPEN
//   - OPEN：请求快速失败（ErrOpenState），Timeout后转为HALF_OPEN
//   - HALF_OPEN：放行最多MaxRequests个探测请求，成功转CLOSED，失败转回OPEN
//
// 用于保护缺货事件发布：消息中间件不可用时快速跳过，不拖慢购买请求
//
//	cb := circuitbreaker.New("demand-publisher", circuitbreaker.Config{
//	    MaxRequests: 1,
//	    Interval:    time.Minute,
//	    Timeout:     30 * time.Second,
//	})
//	err := cb.Execute(ctx, func(ctx context.Context) error {
//	    return publisher.Publish(ctx, events)
//	})
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// 默认配置
const (
	DefaultMaxRequests         = 1
	DefaultInterval            = 60 * time.Second
	DefaultTimeout             = 30 * time.Second
	DefaultConsecutiveFailures = 5
)

var (
	// ErrOpenState 熔断器打开
	ErrOpenState = errors.New("circuit breaker is open")
	// ErrTooManyRequests 半开状态探测请求已满
	ErrTooManyRequests = errors.New("circuit breaker: too many requests")
)

// Config 熔断器配置，零值字段使用默认值
type Config struct {
	MaxRequests uint32        // 半开状态允许的探测请求数
	Interval    time.Duration // CLOSED状态统计窗口，到期清零
	Timeout     time.Duration // OPEN持续时间

	// ReadyToTrip 判断是否熔断，默认连续失败5次
	ReadyToTrip func(counts Counts) bool

	// IsFailure 判断一次调用是否计为失败，默认err != nil
	// context.Canceled等调用方主动放弃的错误可以排除在外
	IsFailure func(err error) bool

	// OnStateChange 状态变化回调（记录日志、更新指标），在持锁时调用，不能回调熔断器
	OnStateChange func(name string, from, to State)
}

// Counts 当前窗口内的统计
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// FailureRate 失败率
func (c Counts) FailureRate() float64 {
	if c.Requests == 0 {
		return 0
	}
	return float64(c.TotalFailures) / float64(c.Requests)
}

func (c *Counts) success() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) failure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// CircuitBreaker 熔断器，并发安全
type CircuitBreaker struct {
	name   string
	config Config
	now    func() time.Time

	mu         sync.Mutex
	state      State
	generation uint64 // 每次状态切换递增，丢弃旧状态下发出的请求结果
	counts     Counts
	expiry     time.Time
}

// New 创建熔断器
func New(name string, config Config) *CircuitBreaker {
	if config.MaxRequests == 0 {
		config.MaxRequests = DefaultMaxRequests
	}
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.ReadyToTrip == nil {
		config.ReadyToTrip = func(c Counts) bool {
			return c.ConsecutiveFailures >= DefaultConsecutiveFailures
		}
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}

	cb := &CircuitBreaker{
		name:   name,
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
	cb.expiry = cb.now().Add(config.Interval)
	return cb
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Execute 在熔断器保护下执行fn
// 熔断时不调用fn，直接返回ErrOpenState或ErrTooManyRequests
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	err = fn(ctx)
	cb.afterRequest(generation, !cb.config.IsFailure(err))
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, _ := cb.currentState(cb.now())
	return state
}

// Counts 当前统计
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.counts
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(cb.now())
	switch {
	case state == StateOpen:
		return generation, ErrOpenState
	case state == StateHalfOpen && cb.counts.Requests >= cb.config.MaxRequests:
		return generation, ErrTooManyRequests
	}

	cb.counts.Requests++
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	state, generation := cb.currentState(now)
	if generation != before {
		return
	}

	if success {
		cb.counts.success()
		if state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.config.MaxRequests {
			cb.setState(StateClosed, now)
		}
		return
	}

	cb.counts.failure()
	switch state {
	case StateClosed:
		if cb.config.ReadyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		cb.setState(StateOpen, now)
	}
}

// currentState 处理过期：CLOSED窗口到期清零，OPEN超时转HALF_OPEN
func (cb *CircuitBreaker) currentState(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.counts = Counts{}
			cb.expiry = now.Add(cb.config.Interval)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state
	cb.generation++
	cb.counts = Counts{}

	switch state {
	case StateClosed:
		cb.expiry = now.Add(cb.config.Interval)
	case StateOpen:
		cb.expiry = now.Add(cb.config.Timeout)
	default:
		cb.expiry = time.Time{}
	}

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.name, prev, state)
	}
}
