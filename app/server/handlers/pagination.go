package handlers

import (
	"errors"
	"human-sourced-registry/app/server/constants"
	"math"
	"strconv"
	"strings"
)

// 超过这个页码时偏移量会溢出
const maxRegistryPage = math.MaxInt / constants.RegistryPageSize

// parsePage 把页码参数转成从 1 开始的页码，非法值一律视为第一页，过大的页码按上限处理
func (a *App) parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && page > 0 {
			return maxRegistryPage
		}
		return 1
	}
	if page < 1 {
		return 1
	}
	return min(page, maxRegistryPage)
}

func (a *App) calcMaxPage(count int64, limit int) int {
	pageMax := count / int64(limit)
	if (count % int64(limit)) != 0 {
		pageMax++
	}
	if pageMax < 1 {
		// 没有记录时也显示一页
		return 1
	}
	return int(pageMax)
}
