package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/certainbookstore/internal/domain/book"
	apperrors "github.com/xiebiao/certainbookstore/pkg/errors"
)

// pubSubClient Publisher依赖的Redis命令
type pubSubClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// Publisher 通过Redis pub/sub发布缺货事件
// 每个事件一条JSON消息，订阅方：SUBSCRIBE {channel}
type Publisher struct {
	client  pubSubClient
	channel string
}

var _ book.DemandPublisher = (*Publisher)(nil)

// NewPublisher 创建Redis缺货事件发布者
func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// PublishSaleMisses 逐条发布，遇到第一个错误即返回
func (p *Publisher) PublishSaleMisses(ctx context.Context, events []book.SaleMissEvent) error {
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return apperrors.ErrMessageError.WithErr(err)
		}
		if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
			return apperrors.ErrRedisError.Withf("发布缺货事件失败 ISBN %d", e.ISBN).WithErr(err)
		}
	}
	return nil
}

// Close 关闭Redis连接
func (p *Publisher) Close() error {
	return p.client.Close()
}
