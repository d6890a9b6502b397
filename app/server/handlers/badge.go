package handlers

import (
	"errors"
	"human-sourced-registry/app/server/models"
	"human-sourced-registry/app/server/render"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const mimeImageSVG = "image/svg+xml"

func (a *App) badge(c echo.Context, statusCode int, kind render.BadgeKind) error {
	a.m.Badges.WithLabelValues(kind.String()).Inc()

	// 错误图片不缓存，正常结果按配置缓存
	if statusCode == http.StatusOK {
		c.Response().Header().Set(echo.HeaderCacheControl, a.opts.BadgeCacheControl)
	} else {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	}

	return c.Blob(statusCode, mimeImageSVG, render.Badge(kind))
}

func (a *App) Badge(c echo.Context) error {
	serial := serialParam(c, ".svg")
	if serial == "" {
		return a.badge(c, http.StatusOK, render.BadgeNotValid)
	}

	db, cancel, err := a.query(c)
	if err != nil {
		a.l.Error("badge datastore unavailable", zap.Error(err))
		return a.badge(c, http.StatusInternalServerError, render.BadgeConfigError)
	}
	defer cancel()

	var cert models.CertificateView
	if err := db.
		Select("serial", "status", "org_name", "issued_at", "expires_at").
		Take(&cert, "serial = ?", serial).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.badge(c, http.StatusOK, render.BadgeNotValid)
		}
		a.l.Error("failed to get certificate for badge", zap.String("serial", serial), zap.Error(err))
		return a.badge(c, http.StatusBadGateway, render.BadgeDBError)
	}

	if cert.ValidAt(a.now(), a.opts.CheckExpiry) {
		return a.badge(c, http.StatusOK, render.BadgeValid)
	}
	return a.badge(c, http.StatusOK, render.BadgeNotValid)
}
