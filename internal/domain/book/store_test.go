package book

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testISBN  int64 = 3044560
	numCopies       = 5
)

func defaultBook() BookToAdd {
	return BookToAdd{
		ISBN:      testISBN,
		Title:     "Harry Potter and JUnit",
		Author:    "JK Unit",
		Price:     1000,
		NumCopies: numCopies,
	}
}

func newTestStore(t *testing.T, books ...BookToAdd) *Store {
	t.Helper()
	s := NewStore(WithRand(rand.New(rand.NewPCG(1, 2))))
	if len(books) == 0 {
		books = []BookToAdd{defaultBook()}
	}
	require.NoError(t, s.AddBooks(books))
	return s
}

func stockOf(t *testing.T, s *Store, isbn int64) StockBook {
	t.Helper()
	books, err := s.GetBooksByISBN([]int64{isbn})
	require.NoError(t, err)
	require.Len(t, books, 1)
	return books[0]
}

func TestStore_AddBooks(t *testing.T) {
	t.Run("上架成功,统计字段归零", func(t *testing.T) {
		s := newTestStore(t)
		got := stockOf(t, s, testISBN)

		assert.Equal(t, "Harry Potter and JUnit", got.Title)
		assert.Equal(t, numCopies, got.NumCopies)
		assert.Zero(t, got.NumSaleMisses)
		assert.Zero(t, got.TotalRating)
		assert.Zero(t, got.NumTimesRated)
		assert.False(t, got.EditorPick)
	})

	t.Run("显式指定编辑推荐", func(t *testing.T) {
		b := defaultBook()
		b.EditorPick = true
		s := newTestStore(t, b)
		assert.True(t, stockOf(t, s, testISBN).EditorPick)
	})

	t.Run("库存为0允许上架", func(t *testing.T) {
		b := defaultBook()
		b.NumCopies = 0
		s := newTestStore(t, b)
		assert.Equal(t, 0, stockOf(t, s, testISBN).NumCopies)
	})

	t.Run("nil批次返回参数错误", func(t *testing.T) {
		s := NewStore()
		assert.ErrorIs(t, s.AddBooks(nil), ErrInvalidArgument)
	})

	invalid := map[string]func(b *BookToAdd){
		"ISBN为0":    func(b *BookToAdd) { b.ISBN = 0 },
		"ISBN为负数":   func(b *BookToAdd) { b.ISBN = -1 },
		"ISBN超过上限":  func(b *BookToAdd) { b.ISBN = MaxISBN + 1 },
		"书名为空":      func(b *BookToAdd) { b.Title = "" },
		"作者为空":      func(b *BookToAdd) { b.Author = "" },
		"库存为负数":     func(b *BookToAdd) { b.NumCopies = -1 },
		"价格为负数":     func(b *BookToAdd) { b.Price = -1 },
	}
	for name, mutate := range invalid {
		t.Run(name+"时整批不生效", func(t *testing.T) {
			s := newTestStore(t)
			before, err := s.ListBooks()
			require.NoError(t, err)

			good := BookToAdd{ISBN: testISBN + 1, Title: "The Art of Computer Programming", Author: "Donald Knuth", Price: 30000, NumCopies: 3}
			bad := BookToAdd{ISBN: testISBN + 2, Title: "The C Programming Language", Author: "Dennis Ritchie", Price: 5000, NumCopies: 3}
			mutate(&bad)

			err = s.AddBooks([]BookToAdd{good, bad})
			assert.ErrorIs(t, err, ErrInvalidArgument)

			after, err := s.ListBooks()
			require.NoError(t, err)
			assert.ElementsMatch(t, before, after)
		})
	}

	t.Run("ISBN已存在返回冲突且整批不生效", func(t *testing.T) {
		s := newTestStore(t)
		err := s.AddBooks([]BookToAdd{
			{ISBN: testISBN + 1, Title: "A", Author: "B", NumCopies: 1},
			defaultBook(),
		})
		assert.ErrorIs(t, err, ErrISBNDuplicate)
		assert.Equal(t, 1, s.Size())
	})

	t.Run("同一批次内ISBN重复返回冲突", func(t *testing.T) {
		s := NewStore()
		b := defaultBook()
		err := s.AddBooks([]BookToAdd{b, b})
		assert.ErrorIs(t, err, ErrISBNDuplicate)
		assert.Zero(t, s.Size())
	})
}

func TestStore_AddCopies(t *testing.T) {
	t.Run("补货成功", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.AddCopies([]BookCopy{{ISBN: testISBN, NumCopies: 3}}))
		assert.Equal(t, numCopies+3, stockOf(t, s, testISBN).NumCopies)
	})

	t.Run("补货数量为0返回参数错误", func(t *testing.T) {
		s := newTestStore(t)
		err := s.AddCopies([]BookCopy{{ISBN: testISBN, NumCopies: 0}})
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, numCopies, stockOf(t, s, testISBN).NumCopies)
	})

	t.Run("ISBN不存在时整批不生效", func(t *testing.T) {
		s := newTestStore(t)
		err := s.AddCopies([]BookCopy{
			{ISBN: testISBN, NumCopies: 2},
			{ISBN: testISBN + 9, NumCopies: 2},
		})
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.Equal(t, numCopies, stockOf(t, s, testISBN).NumCopies)
	})

	t.Run("ISBN无效", func(t *testing.T) {
		s := newTestStore(t)
		assert.ErrorIs(t, s.AddCopies([]BookCopy{{ISBN: -3, NumCopies: 1}}), ErrInvalidArgument)
		assert.ErrorIs(t, s.AddCopies(nil), ErrInvalidArgument)
	})

	t.Run("补货后库存溢出", func(t *testing.T) {
		s := newTestStore(t)
		err := s.AddCopies([]BookCopy{{ISBN: testISBN, NumCopies: math.MaxInt}})
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, numCopies, stockOf(t, s, testISBN).NumCopies)
	})

	t.Run("同一批次重复ISBN累加后溢出", func(t *testing.T) {
		s := newTestStore(t)
		half := (math.MaxInt - numCopies) / 2
		err := s.AddCopies([]BookCopy{
			{ISBN: testISBN, NumCopies: half},
			{ISBN: testISBN, NumCopies: half},
			{ISBN: testISBN, NumCopies: 2},
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, numCopies, stockOf(t, s, testISBN).NumCopies)
	})

	t.Run("补到math.MaxInt为止", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.AddCopies([]BookCopy{
			{ISBN: testISBN, NumCopies: math.MaxInt - numCopies - 1},
			{ISBN: testISBN, NumCopies: 1},
		}))
		assert.Equal(t, math.MaxInt, stockOf(t, s, testISBN).NumCopies)
	})
}

func TestStore_BuyBooks(t *testing.T) {
	t.Run("重复ISBN数量合计溢出返回参数错误", func(t *testing.T) {
		s := newTestStore(t)
		err := s.BuyBooks([]BookCopy{
			{ISBN: testISBN, NumCopies: math.MaxInt},
			{ISBN: testISBN, NumCopies: math.MaxInt},
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		got := stockOf(t, s, testISBN)
		assert.Equal(t, numCopies, got.NumCopies)
		assert.Zero(t, got.NumSaleMisses)
	})

	t.Run("单条math.MaxInt按缺货处理", func(t *testing.T) {
		s := newTestStore(t)
		err := s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: math.MaxInt}})
		assert.ErrorIs(t, err, ErrInsufficientStock)

		got := stockOf(t, s, testISBN)
		assert.Equal(t, numCopies, got.NumCopies)
		assert.Equal(t, int64(1), got.NumSaleMisses)
	})

	t.Run("买光全部库存后再买一本记录缺货", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: numCopies}}))
		assert.Equal(t, 0, stockOf(t, s, testISBN).NumCopies)

		err := s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: 1}})
		assert.ErrorIs(t, err, ErrInsufficientStock)

		got := stockOf(t, s, testISBN)
		assert.Equal(t, 0, got.NumCopies)
		assert.Equal(t, int64(1), got.NumSaleMisses)
	})

	t.Run("部分缺货时不扣减任何库存,缺货图书各+1", func(t *testing.T) {
		s := newTestStore(t,
			defaultBook(),
			BookToAdd{ISBN: testISBN + 1, Title: "A", Author: "A", NumCopies: 2},
			BookToAdd{ISBN: testISBN + 2, Title: "B", Author: "B", NumCopies: 1},
		)

		err := s.BuyBooks([]BookCopy{
			{ISBN: testISBN, NumCopies: 1},     // 足够
			{ISBN: testISBN + 1, NumCopies: 3}, // 缺货
			{ISBN: testISBN + 2, NumCopies: 2}, // 缺货
		})
		require.ErrorIs(t, err, ErrInsufficientStock)

		assert.Equal(t, numCopies, stockOf(t, s, testISBN).NumCopies)
		assert.Zero(t, stockOf(t, s, testISBN).NumSaleMisses)
		assert.Equal(t, 2, stockOf(t, s, testISBN+1).NumCopies)
		assert.Equal(t, int64(1), stockOf(t, s, testISBN+1).NumSaleMisses)
		assert.Equal(t, 1, stockOf(t, s, testISBN+2).NumCopies)
		assert.Equal(t, int64(1), stockOf(t, s, testISBN+2).NumSaleMisses)

		shortages := ShortagesOf(err)
		assert.ElementsMatch(t, []Shortage{
			{ISBN: testISBN + 1, Requested: 3, Available: 2},
			{ISBN: testISBN + 2, Requested: 2, Available: 1},
		}, shortages)
	})

	t.Run("缺货统计在成功购买后保留", func(t *testing.T) {
		s := newTestStore(t)
		require.Error(t, s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: numCopies + 1}}))
		require.NoError(t, s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: 1}}))

		got := stockOf(t, s, testISBN)
		assert.Equal(t, int64(1), got.NumSaleMisses)
		assert.Equal(t, numCopies-1, got.NumCopies)
	})

	t.Run("同一批次重复ISBN合并数量后判断库存", func(t *testing.T) {
		s := newTestStore(t)
		err := s.BuyBooks([]BookCopy{
			{ISBN: testISBN, NumCopies: 3},
			{ISBN: testISBN, NumCopies: 3},
		})
		require.ErrorIs(t, err, ErrInsufficientStock)

		got := stockOf(t, s, testISBN)
		assert.Equal(t, numCopies, got.NumCopies)
		assert.Equal(t, int64(1), got.NumSaleMisses)
	})

	t.Run("负数数量立即失败且无副作用", func(t *testing.T) {
		s := newTestStore(t)
		err := s.BuyBooks([]BookCopy{
			{ISBN: testISBN, NumCopies: numCopies + 1},
			{ISBN: testISBN, NumCopies: -1},
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Zero(t, stockOf(t, s, testISBN).NumSaleMisses)
	})

	t.Run("ISBN无效或不存在立即失败且无副作用", func(t *testing.T) {
		s := newTestStore(t)

		err := s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: 1}, {ISBN: -1, NumCopies: 1}})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		err = s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: 1}, {ISBN: 100000, NumCopies: 1}})
		assert.ErrorIs(t, err, ErrBookNotFound)

		assert.Equal(t, numCopies, stockOf(t, s, testISBN).NumCopies)
		assert.ErrorIs(t, s.BuyBooks(nil), ErrInvalidArgument)
	})

	t.Run("购买0本视为成功且不改变库存", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: 0}}))
		assert.Equal(t, numCopies, stockOf(t, s, testISBN).NumCopies)
	})
}

func TestStore_RateBooks(t *testing.T) {
	t.Run("两次评分求平均", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.RateBooks([]BookRating{{ISBN: testISBN, Rating: 1}}))
		require.NoError(t, s.RateBooks([]BookRating{{ISBN: testISBN, Rating: 5}}))

		got := stockOf(t, s, testISBN)
		assert.Equal(t, int64(6), got.TotalRating)
		assert.Equal(t, int64(2), got.NumTimesRated)
		assert.InDelta(t, 3.0, got.AverageRating(), 1e-9)
	})

	t.Run("新平均值等于(total+r)/(count+1)", func(t *testing.T) {
		s := newTestStore(t)
		for _, r := range []int{4, 2, 0, 5, 3} {
			before := stockOf(t, s, testISBN)
			require.NoError(t, s.RateBooks([]BookRating{{ISBN: testISBN, Rating: r}}))
			after := stockOf(t, s, testISBN)

			want := float64(before.TotalRating+int64(r)) / float64(before.NumTimesRated+1)
			assert.InDelta(t, want, after.AverageRating(), 1e-9)
		}
	})

	t.Run("评分越界整批不生效", func(t *testing.T) {
		s := newTestStore(t)
		err := s.RateBooks([]BookRating{{ISBN: testISBN, Rating: 3}, {ISBN: testISBN, Rating: 10000}})
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorIs(t, s.RateBooks([]BookRating{{ISBN: testISBN, Rating: -1}}), ErrInvalidArgument)
		assert.Zero(t, stockOf(t, s, testISBN).NumTimesRated)
	})

	t.Run("图书不存在", func(t *testing.T) {
		s := newTestStore(t)
		err := s.RateBooks([]BookRating{{ISBN: testISBN + 1, Rating: 3}})
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.ErrorIs(t, s.RateBooks(nil), ErrInvalidArgument)
	})
}

func TestStore_GetTopRatedBooks(t *testing.T) {
	s := newTestStore(t,
		BookToAdd{ISBN: 1, Title: "ACS Compendium", Author: "Marcos", NumCopies: 5},
		BookToAdd{ISBN: 2, Title: "Learn a great haskell", Author: "Ken", NumCopies: 5},
		BookToAdd{ISBN: 3, Title: "Algorithms trivial tutorial", Author: "Mikkel", NumCopies: 5},
	)
	require.NoError(t, s.RateBooks([]BookRating{
		{ISBN: 1, Rating: 1},
		{ISBN: 2, Rating: 5},
		{ISBN: 3, Rating: 3},
	}))

	t.Run("按平均评分降序", func(t *testing.T) {
		top, err := s.GetTopRatedBooks(2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, int64(2), top[0].ISBN)
		assert.Equal(t, int64(3), top[1].ISBN)
	})

	t.Run("n等于总数时每本恰好出现一次", func(t *testing.T) {
		top, err := s.GetTopRatedBooks(3)
		require.NoError(t, err)
		isbns := make([]int64, len(top))
		for i, b := range top {
			isbns[i] = b.ISBN
		}
		assert.ElementsMatch(t, []int64{1, 2, 3}, isbns)
	})

	t.Run("n为0返回空", func(t *testing.T) {
		top, err := s.GetTopRatedBooks(0)
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("n超过总数或为负数", func(t *testing.T) {
		_, err := s.GetTopRatedBooks(4)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = s.GetTopRatedBooks(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestStore_GetEditorPicks(t *testing.T) {
	var books []BookToAdd
	picks := map[int64]bool{}
	for i := int64(1); i <= 10; i++ {
		pick := i%2 == 0
		books = append(books, BookToAdd{ISBN: i, Title: "T", Author: "A", NumCopies: 1, EditorPick: pick})
		if pick {
			picks[i] = true
		}
	}
	s := newTestStore(t, books...)

	t.Run("n小于推荐数时返回n本不重复的推荐图书", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			got, err := s.GetEditorPicks(3)
			require.NoError(t, err)
			require.Len(t, got, 3)

			seen := map[int64]bool{}
			for _, b := range got {
				assert.True(t, picks[b.ISBN], "ISBN %d 不是编辑推荐", b.ISBN)
				assert.True(t, b.EditorPick)
				assert.False(t, seen[b.ISBN], "ISBN %d 重复", b.ISBN)
				seen[b.ISBN] = true
			}
		}
	})

	t.Run("每本推荐图书都可能被抽中", func(t *testing.T) {
		hits := map[int64]int{}
		for i := 0; i < 500; i++ {
			got, err := s.GetEditorPicks(1)
			require.NoError(t, err)
			hits[got[0].ISBN]++
		}
		assert.Len(t, hits, len(picks))
	})

	t.Run("n不小于推荐数时全部返回", func(t *testing.T) {
		got, err := s.GetEditorPicks(len(picks) + 3)
		require.NoError(t, err)
		assert.Len(t, got, len(picks))
	})

	t.Run("n为负数", func(t *testing.T) {
		_, err := s.GetEditorPicks(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("取消推荐后不再返回", func(t *testing.T) {
		require.NoError(t, s.UpdateEditorPicks([]BookEditorPick{{ISBN: 2, EditorPick: false}}))
		got, err := s.GetEditorPicks(10)
		require.NoError(t, err)
		for _, b := range got {
			assert.NotEqual(t, int64(2), b.ISBN)
		}
		assert.Len(t, got, len(picks)-1)
	})
}

func TestStore_UpdateEditorPicks(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpdateEditorPicks([]BookEditorPick{{ISBN: testISBN, EditorPick: true}}))
	assert.True(t, stockOf(t, s, testISBN).EditorPick)

	err := s.UpdateEditorPicks([]BookEditorPick{{ISBN: testISBN, EditorPick: false}, {ISBN: 7, EditorPick: true}})
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.True(t, stockOf(t, s, testISBN).EditorPick, "失败批次不应生效")

	assert.ErrorIs(t, s.UpdateEditorPicks([]BookEditorPick{{ISBN: 0}}), ErrInvalidArgument)
	assert.ErrorIs(t, s.UpdateEditorPicks(nil), ErrInvalidArgument)
}

func TestStore_GetBooksInDemand(t *testing.T) {
	s := newTestStore(t,
		defaultBook(),
		BookToAdd{ISBN: testISBN + 1, Title: "A", Author: "A", NumCopies: 1},
	)

	demand, err := s.GetBooksInDemand()
	require.NoError(t, err)
	assert.Empty(t, demand)

	require.Error(t, s.BuyBooks([]BookCopy{{ISBN: testISBN + 1, NumCopies: 2}}))

	demand, err = s.GetBooksInDemand()
	require.NoError(t, err)
	require.Len(t, demand, 1)
	assert.Equal(t, testISBN+1, demand[0].ISBN)
}

func TestStore_GetBooks(t *testing.T) {
	s := newTestStore(t,
		defaultBook(),
		BookToAdd{ISBN: testISBN + 1, Title: "A", Author: "A", Price: 99, NumCopies: 1},
	)

	t.Run("按ISBN查询并去重", func(t *testing.T) {
		got, err := s.GetBooks([]int64{testISBN + 1, testISBN, testISBN + 1})
		require.NoError(t, err)
		require.Len(t, got, 2)
		isbns := []int64{got[0].ISBN, got[1].ISBN}
		assert.ElementsMatch(t, []int64{testISBN, testISBN + 1}, isbns)
	})

	t.Run("任一ISBN无效或不存在", func(t *testing.T) {
		_, err := s.GetBooks([]int64{testISBN, -1})
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = s.GetBooks([]int64{testISBN, 1})
		assert.ErrorIs(t, err, ErrBookNotFound)
		_, err = s.GetBooksByISBN([]int64{1})
		assert.ErrorIs(t, err, ErrBookNotFound)
		_, err = s.GetBooks(nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("空批次返回空结果", func(t *testing.T) {
		got, err := s.GetBooks([]int64{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := newTestStore(t)

	list, err := s.ListBooks()
	require.NoError(t, err)
	list[0].NumCopies = 1000
	list[0].Title = "changed"

	got := stockOf(t, s, testISBN)
	assert.Equal(t, numCopies, got.NumCopies)
	assert.Equal(t, "Harry Potter and JUnit", got.Title)
}

func TestStore_RemoveBooks(t *testing.T) {
	t.Run("批量下架", func(t *testing.T) {
		s := newTestStore(t,
			defaultBook(),
			BookToAdd{ISBN: testISBN + 1, Title: "A", Author: "A", NumCopies: 1},
		)
		require.NoError(t, s.RemoveBooks([]int64{testISBN, testISBN}))
		assert.Equal(t, 1, s.Size())
	})

	t.Run("任一ISBN不存在时整批不生效", func(t *testing.T) {
		s := newTestStore(t)
		assert.ErrorIs(t, s.RemoveBooks([]int64{testISBN, testISBN + 1}), ErrBookNotFound)
		assert.ErrorIs(t, s.RemoveBooks([]int64{0}), ErrInvalidArgument)
		assert.ErrorIs(t, s.RemoveBooks(nil), ErrInvalidArgument)
		assert.Equal(t, 1, s.Size())
	})

	t.Run("清空仓库", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.RemoveAllBooks())
		list, err := s.ListBooks()
		require.NoError(t, err)
		assert.Empty(t, list)

		// 清空后可以重新上架同一ISBN
		require.NoError(t, s.AddBooks([]BookToAdd{defaultBook()}))
	})
}

// TestStore_ConcurrentBuyAndRestock 并发购买与补货,库存守恒且从不为负
func TestStore_ConcurrentBuyAndRestock(t *testing.T) {
	const (
		workers = 8
		rounds  = 200
	)
	b := defaultBook()
	b.NumCopies = 0
	s := newTestStore(t, b)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		bought int
	)
	for w := 0; w < workers; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_ = s.AddCopies([]BookCopy{{ISBN: testISBN, NumCopies: 1}})
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if err := s.BuyBooks([]BookCopy{{ISBN: testISBN, NumCopies: 1}}); err == nil {
					mu.Lock()
					bought++
					mu.Unlock()
				}
				got, err := s.GetBooksByISBN([]int64{testISBN})
				if err == nil {
					assert.GreaterOrEqual(t, got[0].NumCopies, 0)
				}
			}
		}()
	}
	wg.Wait()

	got := stockOf(t, s, testISBN)
	assert.Equal(t, workers*rounds, got.NumCopies+bought)
	assert.Equal(t, int64(workers*rounds-bought), got.NumSaleMisses)
}

func TestNewSaleMissEvents(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	events := NewSaleMissEvents([]Shortage{
		{ISBN: testISBN, Requested: 6, Available: 5},
		{ISBN: testISBN + 1, Requested: 2, Available: 0},
	}, at)

	require.Len(t, events, 2)
	assert.Equal(t, SaleMissEvent{ISBN: testISBN, Requested: 6, Available: 5, OccurredAt: at}, events[0])
	assert.Equal(t, int64(testISBN+1), events[1].ISBN)
	assert.Empty(t, NewSaleMissEvents(nil, at))
}

func TestNewStore_DefaultRandIndependent(t *testing.T) {
	books := make([]BookToAdd, 30)
	for i := range books {
		b := defaultBook()
		b.ISBN = int64(i + 1)
		b.EditorPick = true
		books[i] = b
	}

	sample := func() []int64 {
		s := NewStore()
		require.NoError(t, s.AddBooks(books))
		picks, err := s.GetEditorPicks(15)
		require.NoError(t, err)
		require.Len(t, picks, 15)
		isbns := make([]int64, len(picks))
		for i, p := range picks {
			isbns[i] = p.ISBN
		}
		return isbns
	}

	// 同一时刻创建的两个仓库不应得到同一抽样序列
	assert.NotEqual(t, sample(), sample())
}
