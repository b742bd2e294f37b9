package book

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/certainbookstore/internal/domain/book"
	"github.com/xiebiao/certainbookstore/pkg/metrics"
	"github.com/xiebiao/certainbookstore/pkg/tracing"
)

// StorefrontUseCase 前台用例(购买、浏览、评分、推荐)
// 设计说明:
// 1. 业务规则全部由仓库负责,用例只做编排与观测
// 2. 购买因缺货失败时,在仓库调用返回后发布缺货事件,发布结果不改变返回的错误
type StorefrontUseCase struct {
	store     book.BookStore
	publisher book.DemandPublisher
	ins       instrument
	now       func() time.Time
}

// NewStorefrontUseCase 创建前台用例,publisher可以为nil(不发布缺货事件)
func NewStorefrontUseCase(store book.BookStore, publisher book.DemandPublisher, logger *zap.Logger) *StorefrontUseCase {
	return &StorefrontUseCase{
		store:     store,
		publisher: publisher,
		ins:       newInstrument("storefront", logger),
		now:       time.Now,
	}
}

// BuyBooks 购买图书
//
// 流程:
// 1. 调用仓库购买(全部成功或全部失败)
// 2. 库存不足时,按缺货明细递增缺货指标并发布缺货事件
// 3. 返回仓库的原始错误
func (uc *StorefrontUseCase) BuyBooks(ctx context.Context, copies []book.BookCopy) error {
	return uc.ins.run(ctx, "buy_books", len(copies), func(ctx context.Context) error {
		err := uc.store.BuyBooks(copies)
		if errors.Is(err, book.ErrInsufficientStock) {
			uc.reportSaleMisses(ctx, book.ShortagesOf(err))
		}
		return err
	})
}

func (uc *StorefrontUseCase) reportSaleMisses(ctx context.Context, shortages []book.Shortage) {
	if len(shortages) == 0 {
		return
	}
	metrics.AddCounter(metrics.SaleMissesTotal, float64(len(shortages)))

	if uc.publisher == nil {
		return
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "demand.publish")
	defer span.End()
	span.SetAttributes(attribute.Int("events", len(shortages)))

	events := book.NewSaleMissEvents(shortages, uc.now())
	if err := uc.publisher.PublishSaleMisses(ctx, events); err != nil {
		tracing.RecordError(span, err)
		uc.ins.logger.Error("缺货事件发布失败",
			zap.Int("events", len(events)),
			zap.Error(err),
		)
	}
}

// GetBooks 按ISBN查询图书
func (uc *StorefrontUseCase) GetBooks(ctx context.Context, isbns []int64) ([]book.Book, error) {
	var result []book.Book
	err := uc.ins.run(ctx, "get_books", len(isbns), func(context.Context) error {
		var err error
		result, err = uc.store.GetBooks(isbns)
		return err
	})
	return result, err
}

// RateBooks 批量评分
func (uc *StorefrontUseCase) RateBooks(ctx context.Context, ratings []book.BookRating) error {
	return uc.ins.run(ctx, "rate_books", len(ratings), func(context.Context) error {
		return uc.store.RateBooks(ratings)
	})
}

// GetEditorPicks 随机返回最多n本编辑推荐
func (uc *StorefrontUseCase) GetEditorPicks(ctx context.Context, n int) ([]book.Book, error) {
	var result []book.Book
	err := uc.ins.run(ctx, "get_editor_picks", -1, func(context.Context) error {
		var err error
		result, err = uc.store.GetEditorPicks(n)
		return err
	})
	return result, err
}

// GetTopRatedBooks 按平均评分返回前n本
func (uc *StorefrontUseCase) GetTopRatedBooks(ctx context.Context, n int) ([]book.Book, error) {
	var result []book.Book
	err := uc.ins.run(ctx, "get_top_rated_books", -1, func(context.Context) error {
		var err error
		result, err = uc.store.GetTopRatedBooks(n)
		return err
	})
	return result, err
}
