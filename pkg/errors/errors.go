package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码匹配
// 带明细的错误（Withf生成）与预定义错误码相同即视为同一类错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Withf 在预定义错误的基础上追加明细，返回新的AppError（不修改原错误）
func (e *AppError) Withf(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message + ": " + fmt.Sprintf(format, args...),
		Err:     e.Err,
	}
}

// WithErr 附加内部错误，返回新的AppError
func (e *AppError) WithErr(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（消息投递失败等）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal     = 50000 // 内部错误
	ErrCodeRedisError   = 50002 // Redis错误
	ErrCodeMessageError = 50003 // 消息队列错误

	// 资源错误（40400-40499）
	ErrCodeBookNotFound = 40402 // 图书不存在

	// 业务规则错误（40000-40099）
	ErrCodeInsufficientStock = 40001 // 库存不足
	ErrCodeISBNDuplicate     = 40004 // ISBN已存在

	// 参数错误（40900-40999），请求体格式错误也归入此类
	ErrCodeInvalidParams = 40900 // 参数错误
)

// =========================================
// 预定义系统错误（业务错误由领域层基于上面的错误码定义）
// =========================================

var (
	ErrInternal     = New(ErrCodeInternal, "系统内部错误")
	ErrRedisError   = New(ErrCodeRedisError, "缓存服务错误")
	ErrMessageError = New(ErrCodeMessageError, "消息服务错误")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithErr(err)
}

// CodeOf 返回错误对应的业务错误码，nil返回0
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	return GetAppError(err).Code
}
