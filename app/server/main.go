package main

import (
	"errors"
	"fmt"
	"human-sourced-registry/app/server/apidocs"
	"human-sourced-registry/app/server/config"
	"human-sourced-registry/app/server/handlers"
	"human-sourced-registry/app/server/inits"
	"human-sourced-registry/app/server/middlewares"
	"human-sourced-registry/app/server/views"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(cfg)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	l.Debug("logger initialized")

	// 初始化数据库连接；未配置时继续运行，相关路由会展示配置错误
	db, err := inits.DB(cfg.Datastore.URL, cfg.Datastore.ServiceKey)
	if err != nil {
		if errors.Is(err, config.ErrDatastoreNotConfigured) {
			l.Warn("datastore not configured, lookups will report configuration errors", zap.Error(err))
		} else {
			l.Fatal("error initializing DB connection", zap.Error(err))
		}
	}

	// 初始化 redis 连接（可选）
	rdb, err := inits.Redis(cfg.Cache.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	if cfg.System.BaseURL == "" {
		l.Warn("BASE_URL not set, qr codes will not be available")
	}

	// 准备页面模板
	v, err := views.New()
	if err != nil {
		l.Fatal("error initializing views", zap.Error(err))
	}

	m := inits.Metrics()

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, m, handlers.Options{
		BaseURL:           cfg.System.BaseURL,
		DBTimeout:         cfg.Datastore.Timeout,
		CheckExpiry:       cfg.Policy.CheckExpiry,
		BadgeCacheControl: cfg.Policy.BadgeCacheControl,
		QRCacheControl:    cfg.Policy.QRCacheControl,
	})

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Renderer = v
	e.Use(middlewares.RequestID())
	e.Use(middlewares.RequestLogger(l))
	e.Use(middleware.Recover())
	e.Use(middlewares.Metrics(m))

	// 绑定 echo 服务
	handlers.RegisterHandlers(e, handlerApp)

	// 添加 API 文档
	if !cfg.IsProd() {
		if spec, err := apidocs.Spec(cfg.System.BaseURL); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", spec))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
