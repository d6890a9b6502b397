package handlers

import (
	"human-sourced-registry/app/server/constants"
	"human-sourced-registry/app/server/models"
	"human-sourced-registry/app/server/types"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type registryParams struct {
	Query  string
	Status string // 为空表示不过滤
	Sort   string
	Dir    string
	Page   int
}

type registryPage struct {
	registryParams

	Statuses   []types.Status
	Rows       []models.CertificateView
	Total      int64
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
	Error      string
}

func (a *App) parseRegistryParams(c echo.Context) registryParams {
	p := registryParams{
		Query: strings.TrimSpace(c.QueryParam("q")),
		Sort:  constants.RegistrySortKeys[0],
		Dir:   constants.SortDirDesc,
		Page:  a.parsePage(c.QueryParam("page")),
	}

	if st, ok := types.ParseStatus(c.QueryParam("status")); ok {
		p.Status = string(st)
	}
	if sort := c.QueryParam("sort"); slices.Contains(constants.RegistrySortKeys, sort) {
		p.Sort = sort
	}
	if strings.ToLower(c.QueryParam("dir")) == constants.SortDirAsc {
		p.Dir = constants.SortDirAsc
	}

	return p
}

// withPage 生成保留其余参数、只替换页码的查询串
func (p registryParams) withPage(page int) string {
	params := url.Values{}
	if p.Query != "" {
		params.Set("q", p.Query)
	}
	if p.Status != "" {
		params.Set("status", p.Status)
	}
	params.Set("sort", p.Sort)
	params.Set("dir", p.Dir)
	params.Set("page", strconv.Itoa(page))

	return "?" + params.Encode()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filters 是列表查询和计数共用的过滤条件
func (p registryParams) filters(tx *gorm.DB) *gorm.DB {
	if p.Query != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(p.Query)) + "%"
		tx = tx.Where("(LOWER(org_name) LIKE ? ESCAPE '\\' OR LOWER(serial) LIKE ? ESCAPE '\\')", like, like)
	}
	if p.Status != "" {
		tx = tx.Where("status = ?", p.Status)
	}
	return tx
}

func (a *App) Registry(c echo.Context) error {
	p := a.parseRegistryParams(c)
	page := registryPage{
		registryParams: p,
		Statuses:       types.Statuses,
		TotalPages:     1,
	}

	db, cancel, err := a.query(c)
	if err != nil {
		a.l.Error("registry datastore unavailable", zap.Error(err))
		page.Error = err.Error()
		return c.Render(http.StatusOK, "registry.html", &page)
	}
	defer cancel()

	limit := constants.RegistryPageSize
	rows := []models.CertificateView{}

	// 同一排序值下再按编号排序，保证翻页时结果不重叠
	listQuery := db.
		Model(&models.CertificateView{}).
		Scopes(p.filters).
		Order(clause.OrderByColumn{Column: clause.Column{Name: p.Sort}, Desc: p.Dir == constants.SortDirDesc})
	if p.Sort != "serial" {
		listQuery = listQuery.Order(clause.OrderByColumn{Column: clause.Column{Name: "serial"}})
	}
	if err := listQuery.
		Limit(limit).
		Offset((p.Page - 1) * limit).
		Find(&rows).
		Error; err != nil {
		a.l.Error("failed to get registry list", zap.Any("params", p), zap.Error(err))
		page.Error = err.Error()
		return c.Render(http.StatusOK, "registry.html", &page)
	}

	if err := db.
		Model(&models.CertificateView{}).
		Scopes(p.filters).
		Count(&page.Total).
		Error; err != nil {
		a.l.Error("failed to count registry list", zap.Any("params", p), zap.Error(err))
		page.Error = err.Error()
		return c.Render(http.StatusOK, "registry.html", &page)
	}

	page.Rows = rows
	page.TotalPages = a.calcMaxPage(page.Total, limit)
	page.HasPrev = p.Page > 1
	page.HasNext = p.Page < page.TotalPages
	page.PrevURL = p.withPage(max(1, min(p.Page-1, page.TotalPages)))
	page.NextURL = p.withPage(min(page.TotalPages, p.Page+1))

	return c.Render(http.StatusOK, "registry.html", &page)
}
