package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/certainbookstore/internal/domain/book"
	"github.com/xiebiao/certainbookstore/pkg/metrics"
)

// StockManagerUseCase 库存管理用例(上架、补货、下架、推荐配置)
type StockManagerUseCase struct {
	store book.StockManager
	ins   instrument
}

// NewStockManagerUseCase 创建库存管理用例
func NewStockManagerUseCase(store book.StockManager, logger *zap.Logger) *StockManagerUseCase {
	uc := &StockManagerUseCase{
		store: store,
		ins:   newInstrument("stock_manager", logger),
	}
	uc.refreshStockGauge()
	return uc
}

// refreshStockGauge 图书种数变化后刷新在库指标
func (uc *StockManagerUseCase) refreshStockGauge() {
	metrics.SetGauge(metrics.BooksInStore, float64(uc.store.Size()))
}

// AddBooks 批量上架
func (uc *StockManagerUseCase) AddBooks(ctx context.Context, books []book.BookToAdd) error {
	err := uc.ins.run(ctx, "add_books", len(books), func(context.Context) error {
		return uc.store.AddBooks(books)
	})
	if err == nil {
		uc.ins.logger.Info("图书已上架", zap.Int("count", len(books)))
		uc.refreshStockGauge()
	}
	return err
}

// AddCopies 批量补货
func (uc *StockManagerUseCase) AddCopies(ctx context.Context, copies []book.BookCopy) error {
	return uc.ins.run(ctx, "add_copies", len(copies), func(context.Context) error {
		return uc.store.AddCopies(copies)
	})
}

// ListBooks 全部图书
func (uc *StockManagerUseCase) ListBooks(ctx context.Context) ([]book.StockBook, error) {
	var result []book.StockBook
	err := uc.ins.run(ctx, "list_books", -1, func(context.Context) error {
		var err error
		result, err = uc.store.ListBooks()
		return err
	})
	return result, err
}

// GetBooksByISBN 按ISBN查询库存视图
func (uc *StockManagerUseCase) GetBooksByISBN(ctx context.Context, isbns []int64) ([]book.StockBook, error) {
	var result []book.StockBook
	err := uc.ins.run(ctx, "get_books_by_isbn", len(isbns), func(context.Context) error {
		var err error
		result, err = uc.store.GetBooksByISBN(isbns)
		return err
	})
	return result, err
}

// UpdateEditorPicks 批量设置编辑推荐
func (uc *StockManagerUseCase) UpdateEditorPicks(ctx context.Context, picks []book.BookEditorPick) error {
	return uc.ins.run(ctx, "update_editor_picks", len(picks), func(context.Context) error {
		return uc.store.UpdateEditorPicks(picks)
	})
}

// GetBooksInDemand 出现过缺货的图书
func (uc *StockManagerUseCase) GetBooksInDemand(ctx context.Context) ([]book.StockBook, error) {
	var result []book.StockBook
	err := uc.ins.run(ctx, "get_books_in_demand", -1, func(context.Context) error {
		var err error
		result, err = uc.store.GetBooksInDemand()
		return err
	})
	return result, err
}

// RemoveBooks 批量下架
func (uc *StockManagerUseCase) RemoveBooks(ctx context.Context, isbns []int64) error {
	err := uc.ins.run(ctx, "remove_books", len(isbns), func(context.Context) error {
		return uc.store.RemoveBooks(isbns)
	})
	if err == nil {
		uc.ins.logger.Info("图书已下架", zap.Int("count", len(isbns)))
		uc.refreshStockGauge()
	}
	return err
}

// RemoveAllBooks 清空仓库
func (uc *StockManagerUseCase) RemoveAllBooks(ctx context.Context) error {
	err := uc.ins.run(ctx, "remove_all_books", -1, func(context.Context) error {
		return uc.store.RemoveAllBooks()
	})
	if err == nil {
		uc.ins.logger.Warn("仓库已清空")
		uc.refreshStockGauge()
	}
	return err
}
