package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/certainbookstore/internal/infrastructure/config"
	"github.com/xiebiao/certainbookstore/internal/interface/http/handler"
	"github.com/xiebiao/certainbookstore/internal/interface/http/middleware"
	"github.com/xiebiao/certainbookstore/pkg/metrics"
	"github.com/xiebiao/certainbookstore/pkg/response"
)

// New 创建Gin引擎并注册全部路由
//
// 路由：
//   - /api/v1/store：前台（购买、查询、评分、推荐、高分）
//   - /api/v1/stock：库存管理（上架、补货、推荐配置、缺货、下架）
//   - /ping、/metrics、/swagger/*any
func New(
	cfg *config.Config,
	logger *zap.Logger,
	storefront *handler.StorefrontHandler,
	stock *handler.StockManagerHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	r.Use(middleware.Logger(logger, cfg.Server.SlowThreshold))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		store := v1.Group("/store")
		{
			store.POST("/buy", storefront.BuyBooks)
			store.POST("/books/lookup", storefront.GetBooks)
			store.POST("/ratings", storefront.RateBooks)
			store.GET("/editor-picks", storefront.GetEditorPicks)
			store.GET("/top-rated", storefront.GetTopRatedBooks)
		}

		stockGroup := v1.Group("/stock")
		{
			stockGroup.POST("/books", stock.AddBooks)
			stockGroup.GET("/books", stock.ListBooks)
			stockGroup.DELETE("/books", stock.RemoveAllBooks)
			stockGroup.POST("/books/lookup", stock.GetBooksByISBN)
			stockGroup.POST("/books/remove", stock.RemoveBooks)
			stockGroup.POST("/copies", stock.AddCopies)
			stockGroup.PUT("/editor-picks", stock.UpdateEditorPicks)
			stockGroup.GET("/in-demand", stock.GetBooksInDemand)
		}
	}

	return r
}
