// Package messaging 缺货事件投递
//
// messaging.driver选择投递方式：
//   - none：不投递（Nop）
//   - redis：Redis pub/sub，频道为messaging.topic
//   - rabbitmq：RabbitMQ Exchange，routing key为messaging.topic
//
// 所有驱动都包在GuardedPublisher里：超时、熔断、指标
package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/certainbookstore/internal/domain/book"
	"github.com/xiebiao/certainbookstore/internal/infrastructure/config"
	"github.com/xiebiao/certainbookstore/internal/infrastructure/messaging/rabbitmq"
	msgredis "github.com/xiebiao/certainbookstore/internal/infrastructure/messaging/redis"
	"github.com/xiebiao/certainbookstore/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/certainbookstore/pkg/errors"
	"github.com/xiebiao/certainbookstore/pkg/metrics"
)

// 发布结果标签
const (
	resultSuccess  = "success"
	resultFailure  = "failure"
	resultRejected = "rejected" // 熔断拒绝
)

// 熔断条件：连续失败达到默认次数，或窗口内请求足够多且失败率过半
const (
	tripMinRequests = 10
	tripFailureRate = 0.5
)

func readyToTrip(c circuitbreaker.Counts) bool {
	if c.ConsecutiveFailures >= circuitbreaker.DefaultConsecutiveFailures {
		return true
	}
	return c.Requests >= tripMinRequests && c.FailureRate() >= tripFailureRate
}

// Publisher 可关闭的缺货事件发布者
type Publisher interface {
	book.DemandPublisher
	Close() error
}

// Nop 不投递任何事件
type Nop struct{}

func (Nop) PublishSaleMisses(context.Context, []book.SaleMissEvent) error { return nil }
func (Nop) Close() error                                                  { return nil }

// GuardedPublisher 为下游发布者加上超时与熔断
type GuardedPublisher struct {
	next    Publisher
	driver  string
	timeout time.Duration
	breaker *circuitbreaker.CircuitBreaker
	logger  *zap.Logger
}

var _ Publisher = (*GuardedPublisher)(nil)

// NewGuardedPublisher 创建带熔断的发布者
func NewGuardedPublisher(driver string, next Publisher, cfg config.MessagingConfig, logger *zap.Logger) *GuardedPublisher {
	metrics.InitMetrics()
	g := &GuardedPublisher{
		next:    next,
		driver:  driver,
		timeout: cfg.PublishTimeout,
		logger:  logger,
	}
	g.breaker = circuitbreaker.New("demand-publisher-"+driver, circuitbreaker.Config{
		Timeout:       cfg.BreakerTimeout,
		ReadyToTrip:   readyToTrip,
		OnStateChange: g.onStateChange,
	})
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": g.breaker.Name()}, float64(circuitbreaker.StateClosed))
	return g
}

func (g *GuardedPublisher) onStateChange(name string, from, to circuitbreaker.State) {
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	g.logger.Warn("熔断器状态变化",
		zap.String("name", name),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)
}

// PublishSaleMisses 在熔断器保护下发布
// 发布不随请求取消而中断，只受timeout限制
func (g *GuardedPublisher) PublishSaleMisses(ctx context.Context, events []book.SaleMissEvent) error {
	if len(events) == 0 {
		return nil
	}

	ctx = context.WithoutCancel(ctx)
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.next.PublishSaleMisses(ctx, events)
	})

	result := resultSuccess
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		result = resultRejected
		err = apperrors.ErrMessageError.Withf("缺货事件投递熔断中").WithErr(err)
	case err != nil:
		result = resultFailure
		counts := g.breaker.Counts()
		g.logger.Debug("缺货事件投递失败",
			zap.String("driver", g.driver),
			zap.String("breaker_state", g.breaker.State().String()),
			zap.Uint32("consecutive_failures", counts.ConsecutiveFailures),
			zap.Float64("failure_rate", counts.FailureRate()),
			zap.Error(err),
		)
	}
	metrics.DemandEventsPublishedTotal.WithLabelValues(g.driver, result).Add(float64(len(events)))
	return err
}

// Close 关闭下游发布者
func (g *GuardedPublisher) Close() error {
	return g.next.Close()
}

// NewDemandPublisher 根据配置创建缺货事件发布者
// 返回的cleanup关闭底层连接
func NewDemandPublisher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (book.DemandPublisher, func(), error) {
	var next Publisher
	switch cfg.Messaging.Driver {
	case config.DriverNone, "":
		return Nop{}, func() {}, nil
	case config.DriverRedis:
		client, err := msgredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		next = msgredis.NewPublisher(client, cfg.Messaging.Topic)
	case config.DriverRabbitMQ:
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ, cfg.Messaging.Topic)
		if err != nil {
			return nil, nil, err
		}
		next = p
	default:
		return nil, nil, fmt.Errorf("未知的消息驱动: %s", cfg.Messaging.Driver)
	}

	logger.Info("缺货事件投递已启用",
		zap.String("driver", cfg.Messaging.Driver),
		zap.String("topic", cfg.Messaging.Topic),
	)
	guarded := NewGuardedPublisher(cfg.Messaging.Driver, next, cfg.Messaging, logger)
	cleanup := func() {
		if err := guarded.Close(); err != nil {
			logger.Error("关闭缺货事件发布者失败", zap.Error(err))
		}
	}
	return guarded, cleanup, nil
}
