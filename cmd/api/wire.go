//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链：
// *App 需要 → *http.Server → *gin.Engine → Handler → UseCase
// UseCase 需要 → book.BookStore / book.StockManager（*book.Store） + book.DemandPublisher
// 全部依赖 → *config.Config、*zap.Logger

package main

import (
	"github.com/google/wire"
)

// InitializeApp 初始化整个应用
// cleanup按创建的逆序释放资源（追踪、缺货事件发布者、日志）
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
		newApp,
	)
	return nil, nil, nil
}
