package book

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/xiebiao/certainbookstore/pkg/errors"
)

// 图书领域错误定义
// 对外只有四类:参数错误、图书不存在、ISBN重复、库存不足
var (
	// ErrInvalidArgument 参数错误(批次为空、ISBN越界、数量非法、评分越界等)
	ErrInvalidArgument = apperrors.New(apperrors.ErrCodeInvalidParams, "参数错误")

	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")
)

// Shortage 单本图书的缺货明细
type Shortage struct {
	ISBN      int64
	Requested int
	Available int
}

// StockShortageError 购买失败时附带的缺货明细
// 作为ErrInsufficientStock的内部错误返回,供应用层发布缺货事件
type StockShortageError struct {
	Shortages []Shortage
}

func (e *StockShortageError) Error() string {
	parts := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		parts[i] = fmt.Sprintf("ISBN %d 需要%d 库存%d", s.ISBN, s.Requested, s.Available)
	}
	return strings.Join(parts, "; ")
}

// ShortagesOf 从BuyBooks返回的错误中提取缺货明细
func ShortagesOf(err error) []Shortage {
	var se *StockShortageError
	if errors.As(err, &se) {
		return se.Shortages
	}
	return nil
}
