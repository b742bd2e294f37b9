package dto

import (
	"fmt"

	"github.com/xiebiao/certainbookstore/internal/domain/book"
)

// 请求DTO说明:
// 1. 批次字段使用binding:"required",缺失或null时返回参数错误,空数组[]合法(不做任何修改)
// 2. 字段取值(ISBN范围、数量、评分)由仓库统一校验,这里不重复校验

// BookCopyRequest ISBN与数量
type BookCopyRequest struct {
	ISBN      int64 `json:"isbn" example:"3044560"`
	NumCopies int   `json:"num_copies" example:"1"`
}

// BuyBooksRequest 购买请求
type BuyBooksRequest struct {
	Items []BookCopyRequest `json:"items" binding:"required"`
}

// AddCopiesRequest 补货请求
type AddCopiesRequest struct {
	Copies []BookCopyRequest `json:"copies" binding:"required"`
}

// ISBNsRequest ISBN集合(查询、下架)
type ISBNsRequest struct {
	ISBNs []int64 `json:"isbns" binding:"required" example:"3044560"`
}

// BookRatingRequest 单本评分
type BookRatingRequest struct {
	ISBN   int64 `json:"isbn" example:"3044560"`
	Rating int   `json:"rating" example:"5"` // 0-5
}

// RateBooksRequest 评分请求
type RateBooksRequest struct {
	Ratings []BookRatingRequest `json:"ratings" binding:"required"`
}

// BookToAddRequest 新书
type BookToAddRequest struct {
	ISBN       int64  `json:"isbn" example:"3044560"`
	Title      string `json:"title" example:"Harry Potter and JUnit"`
	Author     string `json:"author" example:"JK Unit"`
	Price      int64  `json:"price" example:"1000"` // 价格(分)
	NumCopies  int    `json:"num_copies" example:"5"`
	EditorPick bool   `json:"editor_pick" example:"false"`
}

// AddBooksRequest 上架请求
type AddBooksRequest struct {
	Books []BookToAddRequest `json:"books" binding:"required"`
}

// EditorPickRequest 编辑推荐标记
type EditorPickRequest struct {
	ISBN       int64 `json:"isbn" example:"3044560"`
	EditorPick bool  `json:"editor_pick" example:"true"`
}

// UpdateEditorPicksRequest 设置编辑推荐请求
type UpdateEditorPicksRequest struct {
	Picks []EditorPickRequest `json:"picks" binding:"required"`
}

// CountQuery ?n= 查询参数,必填(指针区分缺失与0)
type CountQuery struct {
	N *int `form:"n" binding:"required" example:"3"`
}

// BookResponse 前台图书
type BookResponse struct {
	ISBN          int64   `json:"isbn" example:"3044560"`
	Title         string  `json:"title" example:"Harry Potter and JUnit"`
	Author        string  `json:"author" example:"JK Unit"`
	Price         int64   `json:"price" example:"1000"`
	PriceYuan     string  `json:"price_yuan" example:"10.00"`
	AverageRating float64 `json:"average_rating" example:"4.5"`
	EditorPick    bool    `json:"editor_pick" example:"false"`
}

// StockBookResponse 库存管理端图书
type StockBookResponse struct {
	ISBN          int64   `json:"isbn" example:"3044560"`
	Title         string  `json:"title" example:"Harry Potter and JUnit"`
	Author        string  `json:"author" example:"JK Unit"`
	Price         int64   `json:"price" example:"1000"`
	PriceYuan     string  `json:"price_yuan" example:"10.00"`
	NumCopies     int     `json:"num_copies" example:"5"`
	NumSaleMisses int64   `json:"num_sale_misses" example:"0"`
	TotalRating   int64   `json:"total_rating" example:"9"`
	NumTimesRated int64   `json:"num_times_rated" example:"2"`
	AverageRating float64 `json:"average_rating" example:"4.5"`
	EditorPick    bool    `json:"editor_pick" example:"false"`
}

// ShortageResponse 缺货明细(购买失败时放在data中返回)
type ShortageResponse struct {
	ISBN      int64 `json:"isbn" example:"3044560"`
	Requested int   `json:"requested" example:"6"`
	Available int   `json:"available" example:"5"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	return fmt.Sprintf("%d.%02d", priceFen/100, priceFen%100)
}

// =========================================
// DTO → 领域输入
// =========================================
// 请求中缺失的批次保持nil,由仓库返回参数错误

func ToBookCopies(items []BookCopyRequest) []book.BookCopy {
	if items == nil {
		return nil
	}
	out := make([]book.BookCopy, len(items))
	for i, it := range items {
		out[i] = book.BookCopy{ISBN: it.ISBN, NumCopies: it.NumCopies}
	}
	return out
}

func ToBookRatings(items []BookRatingRequest) []book.BookRating {
	if items == nil {
		return nil
	}
	out := make([]book.BookRating, len(items))
	for i, it := range items {
		out[i] = book.BookRating{ISBN: it.ISBN, Rating: it.Rating}
	}
	return out
}

func ToBooksToAdd(items []BookToAddRequest) []book.BookToAdd {
	if items == nil {
		return nil
	}
	out := make([]book.BookToAdd, len(items))
	for i, it := range items {
		out[i] = book.BookToAdd{
			ISBN:       it.ISBN,
			Title:      it.Title,
			Author:     it.Author,
			Price:      it.Price,
			NumCopies:  it.NumCopies,
			EditorPick: it.EditorPick,
		}
	}
	return out
}

func ToEditorPicks(items []EditorPickRequest) []book.BookEditorPick {
	if items == nil {
		return nil
	}
	out := make([]book.BookEditorPick, len(items))
	for i, it := range items {
		out[i] = book.BookEditorPick{ISBN: it.ISBN, EditorPick: it.EditorPick}
	}
	return out
}

// =========================================
// 领域视图 → 响应DTO
// =========================================

func NewBookResponses(books []book.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = BookResponse{
			ISBN:          b.ISBN,
			Title:         b.Title,
			Author:        b.Author,
			Price:         b.Price,
			PriceYuan:     FormatPriceYuan(b.Price),
			AverageRating: b.AverageRating,
			EditorPick:    b.EditorPick,
		}
	}
	return out
}

func NewStockBookResponses(books []book.StockBook) []StockBookResponse {
	out := make([]StockBookResponse, len(books))
	for i, b := range books {
		out[i] = StockBookResponse{
			ISBN:          b.ISBN,
			Title:         b.Title,
			Author:        b.Author,
			Price:         b.Price,
			PriceYuan:     FormatPriceYuan(b.Price),
			NumCopies:     b.NumCopies,
			NumSaleMisses: b.NumSaleMisses,
			TotalRating:   b.TotalRating,
			NumTimesRated: b.NumTimesRated,
			AverageRating: b.AverageRating(),
			EditorPick:    b.EditorPick,
		}
	}
	return out
}

func NewShortageResponses(shortages []book.Shortage) []ShortageResponse {
	out := make([]ShortageResponse, len(shortages))
	for i, s := range shortages {
		out[i] = ShortageResponse{ISBN: s.ISBN, Requested: s.Requested, Available: s.Available}
	}
	return out
}
