package handlers

import (
	"github.com/labstack/echo/v4"
)

func RegisterHandlers(e *echo.Echo, a *App) {
	e.GET("/", a.Home)
	e.GET("/healthz", a.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(a.m.Handler()))

	e.GET("/api/v1/verify", a.Verify)
	e.GET("/badge/:serial", a.Badge)
	e.GET("/qr/:serial", a.QRCode)
	e.GET("/certificate", a.CertificateRedirect)
	e.GET("/certificate/:serial", a.Certificate)
	e.GET("/registry", a.Registry)
}
