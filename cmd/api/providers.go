package main

import (
	"context"
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/certainbookstore/internal/application/book"
	"github.com/xiebiao/certainbookstore/internal/domain/book"
	"github.com/xiebiao/certainbookstore/internal/infrastructure/config"
	"github.com/xiebiao/certainbookstore/internal/infrastructure/logger"
	"github.com/xiebiao/certainbookstore/internal/infrastructure/messaging"
	"github.com/xiebiao/certainbookstore/internal/interface/http/handler"
	"github.com/xiebiao/certainbookstore/internal/interface/http/router"
	"github.com/xiebiao/certainbookstore/pkg/response"
	"github.com/xiebiao/certainbookstore/pkg/tracing"
)

// ========================================
// Wire Provider Sets
// ========================================

// infrastructureSet 配置、日志、追踪、缺货事件投递
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	provideTracing,
	provideDemandPublisher,
)

// domainSet 内存仓库，同时作为前台与库存管理两个角色的实现
var domainSet = wire.NewSet(
	provideStore,
	wire.Bind(new(book.BookStore), new(*book.Store)),
	wire.Bind(new(book.StockManager), new(*book.Store)),
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appbook.NewStorefrontUseCase,
	appbook.NewStockManagerUseCase,
)

// interfaceSet HTTP处理器、路由、服务器
var interfaceSet = wire.NewSet(
	handler.NewStorefrontHandler,
	handler.NewStockManagerHandler,
	router.New,
	provideHTTPServer,
)

// ========================================
// Custom Providers
// ========================================

// App 组装完成的应用
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Server *http.Server
}

func newApp(cfg *config.Config, logger *zap.Logger, server *http.Server, _ *Tracer) *App {
	return &App{Config: cfg, Logger: logger, Server: server}
}

// provideLogger 创建zap日志，同时作为响应层记录内部错误的日志
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	l, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	response.SetLogger(l)
	return l, func() { _ = l.Sync() }, nil
}

// Tracer 追踪初始化结果（未启用时为空操作）
type Tracer struct {
	Enabled bool
}

// provideTracing 初始化OpenTelemetry，cleanup刷新未发送的Span
func provideTracing(cfg *config.Config, logger *zap.Logger) (*Tracer, func(), error) {
	if !cfg.Tracing.Enabled {
		return &Tracer{}, func() {}, nil
	}

	shutdown, err := tracing.InitTracer(tracing.Config{
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("链路追踪已启用",
		zap.String("endpoint", cfg.Tracing.Endpoint),
		zap.Float64("sample_ratio", cfg.Tracing.SampleRatio),
	)
	cleanup := func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("关闭追踪失败", zap.Error(err))
		}
	}
	return &Tracer{Enabled: true}, cleanup, nil
}

func provideDemandPublisher(cfg *config.Config, logger *zap.Logger) (book.DemandPublisher, func(), error) {
	return messaging.NewDemandPublisher(context.Background(), cfg, logger)
}

// provideStore 创建内存仓库，配置了rand_seed时编辑推荐抽样可复现
func provideStore(cfg *config.Config) *book.Store {
	var opts []book.Option
	if seed := cfg.Inventory.RandSeed; seed != 0 {
		opts = append(opts, book.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return book.NewStore(opts...)
}

func provideHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
