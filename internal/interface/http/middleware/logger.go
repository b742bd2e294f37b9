package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/certainbookstore/pkg/response"
	"github.com/xiebiao/certainbookstore/pkg/tracing"
)

// RequestIDHeader 请求ID头部，客户端传入时沿用
const RequestIDHeader = "X-Request-ID"

// Logger 请求日志中间件
//
// 1. 生成（或沿用）请求ID，写入Context和响应头
// 2. 请求结束后输出结构化日志：方法、路径、状态码、耗时、客户端IP
// 3. 超过slowThreshold的请求额外输出Warn
//
// 不记录请求体（批量请求可能很大）
func Logger(logger *zap.Logger, slowThreshold time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(response.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String(response.RequestIDKey, requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			fields = append(fields,
				zap.String("trace_id", traceID),
				zap.String("span_id", tracing.ExtractSpanID(c.Request.Context())),
			)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.Info("http request", fields...)

		if slowThreshold > 0 && latency > slowThreshold {
			logger.Warn("slow request", fields...)
		}
	}
}
