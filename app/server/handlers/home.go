package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}
