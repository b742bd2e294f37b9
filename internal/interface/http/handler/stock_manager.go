package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/certainbookstore/internal/application/book"
	"github.com/xiebiao/certainbookstore/internal/interface/http/dto"
	"github.com/xiebiao/certainbookstore/pkg/response"
)

// StockManagerHandler 库存管理HTTP处理器
type StockManagerHandler struct {
	uc *appbook.StockManagerUseCase
}

// NewStockManagerHandler 创建库存管理处理器
func NewStockManagerHandler(uc *appbook.StockManagerUseCase) *StockManagerHandler {
	return &StockManagerHandler{uc: uc}
}

// AddBooks 上架新书
// @Summary      上架新书
// @Description  任一ISBN已存在或条目非法则整体失败
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Param        request body dto.AddBooksRequest true "新书"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "code=40004 ISBN已存在"
// @Router       /api/v1/stock/books [post]
func (h *StockManagerHandler) AddBooks(c *gin.Context) {
	var req dto.AddBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.uc.AddBooks(c.Request.Context(), dto.ToBooksToAdd(req.Books)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListBooks 全部图书
// @Summary      全部图书
// @Tags         库存管理
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.StockBookResponse}
// @Router       /api/v1/stock/books [get]
func (h *StockManagerHandler) ListBooks(c *gin.Context) {
	books, err := h.uc.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewStockBookResponses(books))
}

// GetBooksByISBN 按ISBN查询库存
// @Summary      查询库存
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Param        request body dto.ISBNsRequest true "ISBN集合"
// @Success      200 {object} response.Response{data=[]dto.StockBookResponse}
// @Router       /api/v1/stock/books/lookup [post]
func (h *StockManagerHandler) GetBooksByISBN(c *gin.Context) {
	var req dto.ISBNsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	books, err := h.uc.GetBooksByISBN(c.Request.Context(), req.ISBNs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewStockBookResponses(books))
}

// AddCopies 补货
// @Summary      补货
// @Description  每条补货数量至少为1
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Param        request body dto.AddCopiesRequest true "补货明细"
// @Success      200 {object} response.Response
// @Router       /api/v1/stock/copies [post]
func (h *StockManagerHandler) AddCopies(c *gin.Context) {
	var req dto.AddCopiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.uc.AddCopies(c.Request.Context(), dto.ToBookCopies(req.Copies)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UpdateEditorPicks 设置编辑推荐
// @Summary      设置编辑推荐
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateEditorPicksRequest true "推荐标记"
// @Success      200 {object} response.Response
// @Router       /api/v1/stock/editor-picks [put]
func (h *StockManagerHandler) UpdateEditorPicks(c *gin.Context) {
	var req dto.UpdateEditorPicksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.uc.UpdateEditorPicks(c.Request.Context(), dto.ToEditorPicks(req.Picks)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetBooksInDemand 缺货过的图书
// @Summary      缺货图书
// @Description  返回缺货次数大于0的图书
// @Tags         库存管理
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.StockBookResponse}
// @Router       /api/v1/stock/in-demand [get]
func (h *StockManagerHandler) GetBooksInDemand(c *gin.Context) {
	books, err := h.uc.GetBooksInDemand(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewStockBookResponses(books))
}

// RemoveBooks 下架
// @Summary      下架图书
// @Description  任一ISBN不存在则整体失败
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Param        request body dto.ISBNsRequest true "ISBN集合"
// @Success      200 {object} response.Response
// @Router       /api/v1/stock/books/remove [post]
func (h *StockManagerHandler) RemoveBooks(c *gin.Context) {
	var req dto.ISBNsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.uc.RemoveBooks(c.Request.Context(), req.ISBNs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveAllBooks 清空仓库
// @Summary      清空仓库
// @Tags         库存管理
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/stock/books [delete]
func (h *StockManagerHandler) RemoveAllBooks(c *gin.Context) {
	if err := h.uc.RemoveAllBooks(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
