package response

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/certainbookstore/pkg/errors"
)

// RequestIDKey gin.Context中请求ID的键（由日志中间件写入）
const RequestIDKey = "request_id"

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger 设置记录内部错误的日志（启动时调用一次）
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时一般为null（库存不足时附带缺货明细）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	if err := uc.BuyBooks(ctx, copies); err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, nil)
}

// ErrorWithData 错误响应并附带业务数据
func ErrorWithData(c *gin.Context, err error, data interface{}) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只写日志，不返回给客户端
	if appErr.Err != nil {
		fields := []zap.Field{
			zap.Int("code", appErr.Code),
			zap.String("path", c.FullPath()),
			zap.String(RequestIDKey, c.GetString(RequestIDKey)),
			zap.Error(appErr.Err),
		}
		if appErr.Code >= apperrors.ErrCodeInternal {
			logger.Load().Error("request failed", fields...)
		} else {
			logger.Load().Debug("request rejected", fields...)
		}
	}

	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    data,
	})
}
