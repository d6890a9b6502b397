package handlers

import (
	"errors"
	"human-sourced-registry/app/server/models"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	certificateStateOK       = "ok"
	certificateStateConfig   = "config"
	certificateStateDB       = "db"
	certificateStateNotFound = "notfound"
)

type certificatePage struct {
	State    string
	Message  string
	Serial   string
	Cert     *models.Certification
	Valid    bool
	BadgeURL string
	QRURL    string
}

func (a *App) Certificate(c echo.Context) error {
	page := certificatePage{
		Serial: serialParam(c, ""),
	}

	db, cancel, err := a.query(c)
	if err != nil {
		a.l.Error("certificate datastore unavailable", zap.Error(err))
		page.State = certificateStateConfig
		page.Message = err.Error()
		return c.Render(http.StatusOK, "certificate.html", &page)
	}
	defer cancel()

	// 证书和机构一次查出
	var cert models.Certification
	if err := db.
		Joins("Organization").
		Where("certifications.serial_id = ?", page.Serial).
		Take(&cert).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			page.State = certificateStateNotFound
		} else {
			a.l.Error("failed to get certificate", zap.String("serial", page.Serial), zap.Error(err))
			page.State = certificateStateDB
			page.Message = err.Error()
		}
		return c.Render(http.StatusOK, "certificate.html", &page)
	}

	escaped := url.PathEscape(cert.SerialID)
	page.State = certificateStateOK
	page.Cert = &cert
	page.Valid = cert.ValidAt(a.now(), a.opts.CheckExpiry)
	page.BadgeURL = "/badge/" + escaped + ".svg"
	page.QRURL = "/qr/" + escaped + ".png"

	return c.Render(http.StatusOK, "certificate.html", &page)
}

// CertificateRedirect 让首页的查询表单跳转到证书页面
func (a *App) CertificateRedirect(c echo.Context) error {
	serial := strings.TrimSpace(c.QueryParam("serial"))
	if serial == "" {
		return c.Redirect(http.StatusFound, "/")
	}

	return c.Redirect(http.StatusFound, "/certificate/"+url.PathEscape(serial))
}
