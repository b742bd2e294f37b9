package book

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/certainbookstore/pkg/errors"
	"github.com/xiebiao/certainbookstore/pkg/metrics"
	"github.com/xiebiao/certainbookstore/pkg/tracing"
)

const tracerName = "certainbookstore/application/book"

// instrument 为每次仓库调用统一记录Span、指标和日志
type instrument struct {
	role   string // storefront | stock_manager
	logger *zap.Logger
}

func newInstrument(role string, logger *zap.Logger) instrument {
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.InitMetrics()
	return instrument{role: role, logger: logger.With(zap.String("role", role))}
}

// run 在Span内执行一次仓库操作
// batch为批次条目数(无批次的操作传-1)
func (in instrument) run(ctx context.Context, operation string, batch int, fn func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, in.role+"."+operation)
	defer span.End()
	if batch >= 0 {
		span.SetAttributes(attribute.Int("batch.size", batch))
	}

	start := time.Now()
	err := fn(ctx)
	code := apperrors.CodeOf(err)
	metrics.ObserveOperation(operation, code, time.Since(start))

	if err != nil {
		tracing.RecordError(span, err)
		span.SetAttributes(attribute.Int("error.code", code))
		in.logger.Warn("仓库操作被拒绝",
			zap.String("operation", operation),
			zap.Int("code", code),
			zap.Error(err),
			zap.String("trace_id", tracing.ExtractTraceID(ctx)),
		)
	}
	return err
}
