package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "github.com/xiebiao/certainbookstore/docs"
)

// @title           CertainBookStore API
// @version         1.0
// @description     内存图书仓库：前台购买、评分、推荐；库存管理上架、补货、缺货统计
// @host            localhost:8080
// @BasePath        /
func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer cleanup()

	if err := run(app); err != nil {
		app.Logger.Error("服务异常退出", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
}

// run 启动HTTP服务，收到SIGINT/SIGTERM后优雅关闭
func run(app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("服务启动",
			zap.String("addr", app.Server.Addr),
			zap.String("mode", app.Config.Server.Mode),
			zap.String("messaging", app.Config.Messaging.Driver),
		)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	app.Logger.Info("收到退出信号，开始关闭服务")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	app.Logger.Info("服务已关闭")
	return nil
}
