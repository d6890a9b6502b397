package handlers

import (
	"context"
	"human-sourced-registry/app/server/config"
	"human-sourced-registry/app/server/metrics"
	"human-sourced-registry/app/server/utils"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	BaseURL           string        // 对外公开的站点地址
	DBTimeout         time.Duration // 单次查询超时， 0 表示不额外限制
	CheckExpiry       bool          // 过期时间是否参与有效性判断
	BadgeCacheControl string        // 徽章的 Cache-Control
	QRCacheControl    string        // 二维码的 Cache-Control
}

type App struct {
	l    *zap.Logger      // 日志
	db   *gorm.DB         // 数据库，未配置时为 nil
	rdb  *redis.Client    // Redis ，可选，只缓存二维码
	m    *metrics.Metrics // 指标
	opts Options
	now  func() time.Time
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, m *metrics.Metrics, opts Options) *App {
	return &App{
		l:    l,
		db:   db,
		rdb:  rdb,
		m:    m,
		opts: opts,
		now:  time.Now,
	}
}

// query 返回带超时的数据库会话；数据库未配置时返回配置错误
func (a *App) query(c echo.Context) (*gorm.DB, context.CancelFunc, error) {
	if a.db == nil {
		return nil, nil, config.ErrDatastoreNotConfigured
	}

	rctx := c.Request().Context()

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if a.opts.DBTimeout > 0 {
		ctx, cancel = context.WithTimeout(rctx, a.opts.DBTimeout)
	} else {
		ctx, cancel = context.WithCancel(rctx)
	}

	return a.db.WithContext(ctx), cancel, nil
}

// serialParam 取出路径中的编号。echo 按 RawPath 匹配时参数仍是转义形式，只有这时才需要解码
func serialParam(c echo.Context, ext string) string {
	return utils.CleanSerialParam(c.Param("serial"), c.Request().URL.RawPath != "", ext)
}
