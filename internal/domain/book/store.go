package book

import (
	"math"
	"math/rand/v2"
	"slices"
	"sync"
)

// Store 内存图书仓库,同时实现BookStore与StockManager
//
// 并发模型:
// 1. 一把全局互斥锁串行化所有操作(含校验、修改、快照拷贝),不区分读写
// 2. 批量操作先校验全部条目,全部合法后才提交修改(validate-then-commit)
// 3. 唯一例外:BuyBooks校验阶段发现缺货时立即递增NumSaleMisses,即使整体失败也保留
type Store struct {
	mu    sync.Mutex
	books map[int64]*record
	rng   *rand.Rand
}

var (
	_ BookStore    = (*Store)(nil)
	_ StockManager = (*Store)(nil)
)

// Option Store可选配置
type Option func(*Store)

// WithRand 注入随机源(用于GetEditorPicks抽样,测试时传入固定种子)
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewStore 创建空仓库
func NewStore(opts ...Option) *Store {
	s := &Store{
		books: make(map[int64]*record),
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size 当前图书数量
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books)
}

// =========================================
// 库存管理
// =========================================

func (s *Store) AddBooks(books []BookToAdd) error {
	if books == nil {
		return ErrInvalidArgument.Withf("图书列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(books))
	for _, b := range books {
		if err := validateBookToAdd(b); err != nil {
			return err
		}
		if _, ok := s.books[b.ISBN]; ok {
			return ErrISBNDuplicate.Withf("ISBN %d", b.ISBN)
		}
		if _, ok := seen[b.ISBN]; ok {
			return ErrISBNDuplicate.Withf("ISBN %d 在同一批次中重复", b.ISBN)
		}
		seen[b.ISBN] = struct{}{}
	}

	for _, b := range books {
		s.books[b.ISBN] = newRecord(b)
	}
	return nil
}

func validateBookToAdd(b BookToAdd) error {
	switch {
	case !isValidISBN(b.ISBN):
		return ErrInvalidArgument.Withf("ISBN %d 无效", b.ISBN)
	case b.Title == "":
		return ErrInvalidArgument.Withf("ISBN %d 书名为空", b.ISBN)
	case b.Author == "":
		return ErrInvalidArgument.Withf("ISBN %d 作者为空", b.ISBN)
	case b.NumCopies < 0:
		return ErrInvalidArgument.Withf("ISBN %d 库存%d无效", b.ISBN, b.NumCopies)
	case b.Price < 0:
		return ErrInvalidArgument.Withf("ISBN %d 价格%d无效", b.ISBN, b.Price)
	}
	return nil
}

func (s *Store) AddCopies(copies []BookCopy) error {
	if copies == nil {
		return ErrInvalidArgument.Withf("补货列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 同一ISBN的补货先累加,累加后的库存不能超过math.MaxInt
	pending := make(map[int64]int, len(copies))
	for _, c := range copies {
		if err := s.checkISBN(c.ISBN); err != nil {
			return err
		}
		if c.NumCopies < 1 {
			return ErrInvalidArgument.Withf("ISBN %d 补货数量%d无效", c.ISBN, c.NumCopies)
		}
		if pending[c.ISBN] > math.MaxInt-s.books[c.ISBN].numCopies-c.NumCopies {
			return ErrInvalidArgument.Withf("ISBN %d 补货后库存溢出", c.ISBN)
		}
		pending[c.ISBN] += c.NumCopies
	}

	for isbn, n := range pending {
		s.books[isbn].numCopies += n
	}
	return nil
}

func (s *Store) ListBooks() ([]StockBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]StockBook, 0, len(s.books))
	for _, r := range s.books {
		result = append(result, r.stockBook())
	}
	return result, nil
}

func (s *Store) GetBooksByISBN(isbns []int64) ([]StockBook, error) {
	if isbns == nil {
		return nil, ErrInvalidArgument.Withf("ISBN列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.checkISBNSet(isbns)
	if err != nil {
		return nil, err
	}

	result := make([]StockBook, 0, len(keys))
	for _, isbn := range keys {
		result = append(result, s.books[isbn].stockBook())
	}
	return result, nil
}

func (s *Store) UpdateEditorPicks(picks []BookEditorPick) error {
	if picks == nil {
		return ErrInvalidArgument.Withf("推荐列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range picks {
		if err := s.checkISBN(p.ISBN); err != nil {
			return err
		}
	}

	for _, p := range picks {
		s.books[p.ISBN].editorPick = p.EditorPick
	}
	return nil
}

func (s *Store) GetBooksInDemand() ([]StockBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]StockBook, 0)
	for _, r := range s.books {
		if r.numSaleMisses > 0 {
			result = append(result, r.stockBook())
		}
	}
	return result, nil
}

func (s *Store) RemoveBooks(isbns []int64) error {
	if isbns == nil {
		return ErrInvalidArgument.Withf("ISBN列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.checkISBNSet(isbns)
	if err != nil {
		return err
	}

	for _, isbn := range keys {
		delete(s.books, isbn)
	}
	return nil
}

func (s *Store) RemoveAllBooks() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.books)
	return nil
}

// =========================================
// 前台
// =========================================

// BuyBooks 购买图书
//
// 流程:
// 1. 逐条检查数量与ISBN,非法或不存在立即返回(无副作用)
// 2. 同一批次中重复的ISBN先合并数量,再与库存比较(合计溢出视为参数错误)
// 3. 缺货的图书立即NumSaleMisses+1,全部检查完后若有缺货则整体失败,不扣减任何库存
// 4. 全部满足才统一扣减
func (s *Store) BuyBooks(copies []BookCopy) error {
	if copies == nil {
		return ErrInvalidArgument.Withf("购买列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	requested := make(map[int64]int, len(copies))
	order := make([]int64, 0, len(copies))
	for _, c := range copies {
		if c.NumCopies < 0 {
			return ErrInvalidArgument.Withf("ISBN %d 购买数量%d无效", c.ISBN, c.NumCopies)
		}
		if err := s.checkISBN(c.ISBN); err != nil {
			return err
		}
		if _, ok := requested[c.ISBN]; !ok {
			order = append(order, c.ISBN)
		}
		if requested[c.ISBN] > math.MaxInt-c.NumCopies {
			return ErrInvalidArgument.Withf("ISBN %d 购买数量合计溢出", c.ISBN)
		}
		requested[c.ISBN] += c.NumCopies
	}

	var shortages []Shortage
	for _, isbn := range order {
		r := s.books[isbn]
		if r.numCopies < requested[isbn] {
			r.numSaleMisses++
			shortages = append(shortages, Shortage{
				ISBN:      isbn,
				Requested: requested[isbn],
				Available: r.numCopies,
			})
		}
	}
	if len(shortages) > 0 {
		return ErrInsufficientStock.
			Withf("%d本图书库存不足", len(shortages)).
			WithErr(&StockShortageError{Shortages: shortages})
	}

	for _, isbn := range order {
		s.books[isbn].numCopies -= requested[isbn]
	}
	return nil
}

func (s *Store) GetBooks(isbns []int64) ([]Book, error) {
	if isbns == nil {
		return nil, ErrInvalidArgument.Withf("ISBN列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.checkISBNSet(isbns)
	if err != nil {
		return nil, err
	}

	result := make([]Book, 0, len(keys))
	for _, isbn := range keys {
		result = append(result, s.books[isbn].book())
	}
	return result, nil
}

func (s *Store) RateBooks(ratings []BookRating) error {
	if ratings == nil {
		return ErrInvalidArgument.Withf("评分列表为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, br := range ratings {
		if err := s.checkISBN(br.ISBN); err != nil {
			return err
		}
		if br.Rating < 0 || br.Rating > 5 {
			return ErrInvalidArgument.Withf("ISBN %d 评分%d无效", br.ISBN, br.Rating)
		}
	}

	for _, br := range ratings {
		r := s.books[br.ISBN]
		r.totalRating += int64(br.Rating)
		r.numTimesRated++
	}
	return nil
}

// GetEditorPicks 编辑推荐数不超过n时全部返回,否则无放回均匀抽取n本
func (s *Store) GetEditorPicks(n int) ([]Book, error) {
	if n < 0 {
		return nil, ErrInvalidArgument.Withf("n=%d 不能为负数", n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var picks []*record
	for _, r := range s.books {
		if r.editorPick {
			picks = append(picks, r)
		}
	}

	if len(picks) > n {
		// 部分Fisher-Yates洗牌:只需确定前n个位置
		for i := 0; i < n; i++ {
			j := i + s.rng.IntN(len(picks)-i)
			picks[i], picks[j] = picks[j], picks[i]
		}
		picks = picks[:n]
	}

	result := make([]Book, len(picks))
	for i, r := range picks {
		result[i] = r.book()
	}
	return result, nil
}

// GetTopRatedBooks 平均评分相同的图书之间顺序不确定
func (s *Store) GetTopRatedBooks(n int) ([]Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 || n > len(s.books) {
		return nil, ErrInvalidArgument.Withf("n=%d 超出范围[0,%d]", n, len(s.books))
	}

	all := make([]*record, 0, len(s.books))
	for _, r := range s.books {
		all = append(all, r)
	}
	slices.SortFunc(all, func(a, b *record) int {
		ra, rb := a.averageRating(), b.averageRating()
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		}
		return 0
	})

	result := make([]Book, n)
	for i := 0; i < n; i++ {
		result[i] = all[i].book()
	}
	return result, nil
}

// =========================================
// 校验辅助函数(调用方必须持锁)
// =========================================

func (s *Store) checkISBN(isbn int64) error {
	if !isValidISBN(isbn) {
		return ErrInvalidArgument.Withf("ISBN %d 无效", isbn)
	}
	if _, ok := s.books[isbn]; !ok {
		return ErrBookNotFound.Withf("ISBN %d", isbn)
	}
	return nil
}

// checkISBNSet 校验并去重,返回去重后的ISBN
func (s *Store) checkISBNSet(isbns []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(isbns))
	keys := make([]int64, 0, len(isbns))
	for _, isbn := range isbns {
		if err := s.checkISBN(isbn); err != nil {
			return nil, err
		}
		if _, ok := seen[isbn]; ok {
			continue
		}
		seen[isbn] = struct{}{}
		keys = append(keys, isbn)
	}
	return keys, nil
}
