package rabbitmq

import (
	"context"

	"github.com/xiebiao/certainbookstore/internal/domain/book"
	"github.com/xiebiao/certainbookstore/internal/infrastructure/config"
	apperrors "github.com/xiebiao/certainbookstore/pkg/errors"
	"github.com/xiebiao/certainbookstore/pkg/mq"
)

// amqpPublisher pkg/mq.Publisher的发布能力
type amqpPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
	Close() error
}

// Publisher 通过RabbitMQ发布缺货事件
// routing key为messaging.topic，消费方将Queue绑定到该key（topic交换机可用通配符）
type Publisher struct {
	mq         amqpPublisher
	routingKey string
}

var _ book.DemandPublisher = (*Publisher)(nil)

// NewPublisher 连接RabbitMQ并声明Exchange
func NewPublisher(cfg config.RabbitMQConfig, routingKey string) (*Publisher, error) {
	p, err := mq.NewPublisher(cfg.URL, cfg.Exchange, cfg.ExchangeType)
	if err != nil {
		return nil, apperrors.ErrMessageError.WithErr(err)
	}
	return &Publisher{mq: p, routingKey: routingKey}, nil
}

// PublishSaleMisses 每个事件一条持久化消息
func (p *Publisher) PublishSaleMisses(ctx context.Context, events []book.SaleMissEvent) error {
	for _, e := range events {
		if err := p.mq.Publish(ctx, p.routingKey, e); err != nil {
			return apperrors.ErrMessageError.Withf("发布缺货事件失败 ISBN %d", e.ISBN).WithErr(err)
		}
	}
	return nil
}

// Close 关闭Channel与连接
func (p *Publisher) Close() error {
	return p.mq.Close()
}
