package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"human-sourced-registry/app/server/config"
	"human-sourced-registry/app/server/constants"
	"human-sourced-registry/app/server/render"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const mimeImagePNG = "image/png"

// certificateURL 拼出证书页面的公开地址
func (a *App) certificateURL(serial string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(a.opts.BaseURL), "/")
	if base == "" {
		return "", config.ErrBaseURLNotConfigured
	}

	return base + "/certificate/" + url.PathEscape(serial), nil
}

// qrCodePNG 先查缓存，没有再渲染并写回缓存；缓存出错不影响结果
func (a *App) qrCodePNG(ctx context.Context, target string) ([]byte, error) {
	var cacheKey string
	if a.rdb != nil {
		sum := sha256.Sum256([]byte(target))
		cacheKey = fmt.Sprintf(constants.CacheKeyQRCode, hex.EncodeToString(sum[:]))

		if data, err := a.rdb.Get(ctx, cacheKey).Bytes(); err != nil {
			if !errors.Is(err, redis.Nil) {
				a.l.Error("failed to query cache for qr code", zap.String("target", target), zap.Error(err))
			}
		} else {
			a.m.QRCodes.WithLabelValues("cache").Inc()
			return data, nil
		}
	}

	data, err := render.QRCode(target)
	if err != nil {
		return nil, err
	}
	a.m.QRCodes.WithLabelValues("render").Inc()

	if a.rdb != nil {
		if err := a.rdb.Set(ctx, cacheKey, data, constants.CacheExpireQRCode).Err(); err != nil {
			a.l.Error("failed to cache qr code", zap.String("target", target), zap.Error(err))
		}
	}

	return data, nil
}

func (a *App) QRCode(c echo.Context) error {
	serial := serialParam(c, ".png")
	if serial == "" {
		return c.String(http.StatusBadRequest, "serial is required")
	}

	target, err := a.certificateURL(serial)
	if err != nil {
		a.l.Error("qr code target unavailable", zap.Error(err))
		return c.String(http.StatusInternalServerError, err.Error())
	}

	data, err := a.qrCodePNG(c.Request().Context(), target)
	if err != nil {
		a.l.Error("failed to render qr code", zap.String("target", target), zap.Error(err))
		return c.String(http.StatusInternalServerError, "failed to render qr code")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, a.opts.QRCacheControl)
	return c.Blob(http.StatusOK, mimeImagePNG, data)
}
