package handlers

import (
	"errors"
	"human-sourced-registry/app/server/models"
	"human-sourced-registry/app/server/types"
	"human-sourced-registry/app/server/utils"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) Verify(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	// 检查参数
	serial := strings.TrimSpace(c.QueryParam("serial"))
	if serial == "" {
		return c.JSON(http.StatusBadRequest, &types.ErrorMessage{Error: "serial is required"})
	}

	db, cancel, err := a.query(c)
	if err != nil {
		a.l.Error("verify datastore unavailable", zap.Error(err))
		a.m.Verdicts.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{Error: err.Error()})
	}
	defer cancel()

	// 从视图中查询
	var cert models.CertificateView
	if err := db.Take(&cert, "serial = ?", serial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.m.Verdicts.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, &types.Verdict{Valid: false, Serial: serial})
		}
		a.l.Error("failed to get certificate", zap.String("serial", serial), zap.Error(err))
		a.m.Verdicts.WithLabelValues("error").Inc()
		return c.JSON(http.StatusBadGateway, &types.ErrorMessage{Error: err.Error()})
	}

	now := a.now().UTC()

	var expiresAt *time.Time
	if cert.ExpiresAt != nil {
		expiresAt = utils.P(cert.ExpiresAt.UTC())
	}

	valid := cert.ValidAt(now, a.opts.CheckExpiry)
	if valid {
		a.m.Verdicts.WithLabelValues("valid").Inc()
	} else {
		a.m.Verdicts.WithLabelValues("invalid").Inc()
	}

	return c.JSON(http.StatusOK, &types.Verdict{
		Valid:          valid,
		Serial:         cert.Serial,
		Org:            cert.OrgName,
		Status:         cert.Status,
		IssuedAt:       utils.P(cert.IssuedAt.UTC()),
		ExpiresAt:      expiresAt,
		LastVerifiedAt: &now,
	})
}
