package book

import "context"

// BookStore 前台接口(购买、浏览、评分、推荐)
// 设计说明:
// 1. 由domain层定义接口,Store实现,应用层依赖接口便于替换与测试
// 2. 所有方法同步完成,不可取消,不做任何I/O
type BookStore interface {
	// BuyBooks 购买图书
	// 注意:库存不足时返回ErrInsufficientStock,但缺货图书的NumSaleMisses已经递增
	// (缺货统计不随失败回滚,GetBooksInDemand依赖这一信号)
	BuyBooks(copies []BookCopy) error

	// GetBooks 按ISBN查询图书(前台视图)
	GetBooks(isbns []int64) ([]Book, error)

	// RateBooks 批量评分(0-5)
	RateBooks(ratings []BookRating) error

	// GetEditorPicks 随机返回最多n本编辑推荐图书
	GetEditorPicks(n int) ([]Book, error)

	// GetTopRatedBooks 按平均评分降序返回前n本
	GetTopRatedBooks(n int) ([]Book, error)
}

// StockManager 库存管理接口(上架、补货、下架、推荐配置)
type StockManager interface {
	// AddBooks 批量上架新书,任一ISBN已存在则整体失败
	AddBooks(books []BookToAdd) error

	// AddCopies 批量补货
	AddCopies(copies []BookCopy) error

	// ListBooks 返回全部图书
	ListBooks() ([]StockBook, error)

	// GetBooksByISBN 按ISBN查询图书(库存视图)
	GetBooksByISBN(isbns []int64) ([]StockBook, error)

	// UpdateEditorPicks 批量设置编辑推荐标记
	UpdateEditorPicks(picks []BookEditorPick) error

	// GetBooksInDemand 返回出现过缺货的图书
	GetBooksInDemand() ([]StockBook, error)

	// RemoveBooks 批量下架
	RemoveBooks(isbns []int64) error

	// RemoveAllBooks 清空仓库
	RemoveAllBooks() error

	// Size 当前图书种数
	Size() int
}

// DemandPublisher 缺货事件发布(Redis pub/sub、RabbitMQ等)
// 在仓库锁释放之后调用,发布失败不影响购买结果
type DemandPublisher interface {
	PublishSaleMisses(ctx context.Context, events []SaleMissEvent) error
}
