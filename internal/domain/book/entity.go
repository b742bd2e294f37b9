package book

// MaxISBN ISBN上限(13位数字)
const MaxISBN int64 = 9999999999999

// StockBook 图书库存快照(库存管理端视图)
// 设计说明:
// 1. 所有查询返回值拷贝,调用方修改不会影响仓库内部状态
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
type StockBook struct {
	ISBN          int64
	Title         string
	Author        string
	Price         int64 // 价格(单位:分)
	NumCopies     int   // 库存数量
	NumSaleMisses int64 // 缺货未售出次数,只增不减
	TotalRating   int64 // 评分总和
	NumTimesRated int64 // 评分次数
	EditorPick    bool  // 是否编辑推荐
}

// AverageRating 平均评分(未评分时为0)
func (b StockBook) AverageRating() float64 {
	if b.NumTimesRated == 0 {
		return 0
	}
	return float64(b.TotalRating) / float64(b.NumTimesRated)
}

// Book 图书快照(前台视图,不暴露库存与缺货统计)
type Book struct {
	ISBN          int64
	Title         string
	Author        string
	Price         int64
	AverageRating float64
	EditorPick    bool
}

// BookToAdd 新上架图书
type BookToAdd struct {
	ISBN       int64
	Title      string
	Author     string
	Price      int64
	NumCopies  int
	EditorPick bool
}

// BookCopy ISBN与数量(用于补货、购买)
type BookCopy struct {
	ISBN      int64
	NumCopies int
}

// BookRating ISBN与评分(0-5)
type BookRating struct {
	ISBN   int64
	Rating int
}

// BookEditorPick ISBN与编辑推荐标记
type BookEditorPick struct {
	ISBN       int64
	EditorPick bool
}

// record 仓库内部的可变图书记录,只在Store持锁时访问
type record struct {
	isbn          int64
	title         string
	author        string
	price         int64
	numCopies     int
	numSaleMisses int64
	totalRating   int64
	numTimesRated int64
	editorPick    bool
}

func newRecord(b BookToAdd) *record {
	return &record{
		isbn:       b.ISBN,
		title:      b.Title,
		author:     b.Author,
		price:      b.Price,
		numCopies:  b.NumCopies,
		editorPick: b.EditorPick,
	}
}

func (r *record) stockBook() StockBook {
	return StockBook{
		ISBN:          r.isbn,
		Title:         r.title,
		Author:        r.author,
		Price:         r.price,
		NumCopies:     r.numCopies,
		NumSaleMisses: r.numSaleMisses,
		TotalRating:   r.totalRating,
		NumTimesRated: r.numTimesRated,
		EditorPick:    r.editorPick,
	}
}

func (r *record) book() Book {
	return Book{
		ISBN:          r.isbn,
		Title:         r.title,
		Author:        r.author,
		Price:         r.price,
		AverageRating: r.averageRating(),
		EditorPick:    r.editorPick,
	}
}

func (r *record) averageRating() float64 {
	if r.numTimesRated == 0 {
		return 0
	}
	return float64(r.totalRating) / float64(r.numTimesRated)
}

// isValidISBN ISBN必须为正数且不超过MaxISBN
func isValidISBN(isbn int64) bool {
	return isbn >= 1 && isbn <= MaxISBN
}
