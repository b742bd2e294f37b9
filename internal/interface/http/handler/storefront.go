package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/certainbookstore/internal/application/book"
	"github.com/xiebiao/certainbookstore/internal/domain/book"
	"github.com/xiebiao/certainbookstore/internal/interface/http/dto"
	"github.com/xiebiao/certainbookstore/pkg/response"
)

// StorefrontHandler 前台HTTP处理器
type StorefrontHandler struct {
	uc *appbook.StorefrontUseCase
}

// NewStorefrontHandler 创建前台处理器
func NewStorefrontHandler(uc *appbook.StorefrontUseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// bindError 请求格式错误(JSON非法、缺少批次字段、n不是整数)与仓库的参数校验同属参数错误
func bindError(c *gin.Context, err error) {
	response.Error(c, book.ErrInvalidArgument.Withf("%v", err))
}

// BuyBooks 购买图书
// @Summary      购买图书
// @Description  全部满足才扣减库存;任一图书缺货则整体失败,缺货图书的缺货次数仍然递增
// @Tags         前台
// @Accept       json
// @Produce      json
// @Param        request body dto.BuyBooksRequest true "购买明细"
// @Success      200 {object} response.Response "code=0成功"
// @Failure      200 {object} response.Response{data=[]dto.ShortageResponse} "code=40001库存不足"
// @Router       /api/v1/store/buy [post]
func (h *StorefrontHandler) BuyBooks(c *gin.Context) {
	var req dto.BuyBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.uc.BuyBooks(c.Request.Context(), dto.ToBookCopies(req.Items)); err != nil {
		if shortages := book.ShortagesOf(err); len(shortages) > 0 {
			response.ErrorWithData(c, err, dto.NewShortageResponses(shortages))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetBooks 按ISBN查询图书
// @Summary      查询图书
// @Tags         前台
// @Accept       json
// @Produce      json
// @Param        request body dto.ISBNsRequest true "ISBN集合"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      200 {object} response.Response "code=40402图书不存在"
// @Router       /api/v1/store/books/lookup [post]
func (h *StorefrontHandler) GetBooks(c *gin.Context) {
	var req dto.ISBNsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	books, err := h.uc.GetBooks(c.Request.Context(), req.ISBNs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// RateBooks 批量评分
// @Summary      评分
// @Description  评分取值0-5,任一条目非法则整体失败
// @Tags         前台
// @Accept       json
// @Produce      json
// @Param        request body dto.RateBooksRequest true "评分"
// @Success      200 {object} response.Response
// @Router       /api/v1/store/ratings [post]
func (h *StorefrontHandler) RateBooks(c *gin.Context) {
	var req dto.RateBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.uc.RateBooks(c.Request.Context(), dto.ToBookRatings(req.Ratings)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetEditorPicks 编辑推荐
// @Summary      编辑推荐
// @Description  随机返回最多n本编辑推荐图书
// @Tags         前台
// @Produce      json
// @Param        n query int true "数量"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/store/editor-picks [get]
func (h *StorefrontHandler) GetEditorPicks(c *gin.Context) {
	var q dto.CountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	books, err := h.uc.GetEditorPicks(c.Request.Context(), *q.N)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// GetTopRatedBooks 评分最高的图书
// @Summary      高分图书
// @Description  按平均评分降序返回前n本,n不能超过图书总数
// @Tags         前台
// @Produce      json
// @Param        n query int true "数量"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/store/top-rated [get]
func (h *StorefrontHandler) GetTopRatedBooks(c *gin.Context) {
	var q dto.CountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	books, err := h.uc.GetTopRatedBooks(c.Request.Context(), *q.N)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}
