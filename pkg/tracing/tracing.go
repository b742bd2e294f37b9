// Package tracing 提供基于OpenTelemetry的链路追踪
//
// # 核心概念
//
//   - Trace：一次完整请求的链路，由多个Span组成
//   - Span：一个操作单元（HTTP请求、一次仓库操作、一次缺货事件发布）
//   - SpanContext：TraceID + SpanID，随Context向下游传递
//
// # 本服务的Span层级
//
//	Trace: POST /api/v1/store/buy
//	├─ Span1: HTTP请求（middleware.Tracing创建）
//	│  ├─ Span2: storefront.buy_books（应用层）
//	│  │  └─ Span3: demand.publish（缺货时发布事件）
//
// # 使用示例
//
//	shutdown, err := tracing.InitTracer(tracing.Config{
//	    ServiceName: "certainbookstore",
//	    Endpoint:    "localhost:4317",
//	    SampleRatio: 1,
//	})
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "storefront", "BuyBooks")
//	defer span.End()
//	if err := store.BuyBooks(copies); err != nil {
//	    tracing.RecordError(span, err)
//	}
//
// 采样：开发环境SampleRatio=1（全部采样），生产环境按需调低（如0.01）
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Config 追踪配置
type Config struct {
	ServiceName string  // 服务名称（在Jaeger UI中显示）
	Endpoint    string  // OTLP gRPC端点，如 localhost:4317（不含协议）
	SampleRatio float64 // 采样率[0,1]
	Insecure    bool    // 是否禁用TLS
}

// InitTracer 初始化全局Tracer Provider
//
// 返回的shutdown必须在进程退出前调用，刷新BatchSpanProcessor中未发送的Span
func InitTracer(cfg Config) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sampler(cfg.SampleRatio))),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, // W3C traceparent
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}

// sampler 按采样率选择采样器
// ratio>=1全部采样，ratio<=0不采样
func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(ratio)
	}
}

// StartSpan 创建Span，ctx中有父Span时自动成为子Span
//
// 必须使用返回的ctx调用下游函数，否则无法构建调用树
func StartSpan(ctx context.Context, tracerName, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, opts...)
}

// RecordError 记录错误并将Span标记为失败
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// ExtractTraceID 从Context提取TraceID（32位十六进制，用于关联日志）
func ExtractTraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

// ExtractSpanID 从Context提取SpanID（16位十六进制）
func ExtractSpanID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.SpanID().String()
}
