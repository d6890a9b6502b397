package render

import (
	"fmt"
	"human-sourced-registry/app/server/constants"
)

type BadgeKind int

const (
	BadgeValid BadgeKind = iota
	BadgeNotValid
	BadgeConfigError
	BadgeDBError
)

const badgeTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[2]d" role="img" aria-label="%[4]s">` +
	`<rect rx="4" width="%[1]d" height="%[2]d" fill="%[3]s"/>` +
	`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" fill="#fff" font-family="Verdana,DejaVu Sans,sans-serif" font-size="12">%[4]s</text>` +
	`</svg>`

func (k BadgeKind) style() (fill string, label string) {
	switch k {
	case BadgeValid:
		return constants.BadgeColorValid, constants.BadgeLabelValid
	case BadgeConfigError:
		return constants.BadgeColorConfigError, constants.BadgeLabelConfigError
	case BadgeDBError:
		return constants.BadgeColorDBError, constants.BadgeLabelDBError
	default:
		return constants.BadgeColorNotValid, constants.BadgeLabelNotValid
	}
}

func (k BadgeKind) String() string {
	switch k {
	case BadgeValid:
		return "valid"
	case BadgeConfigError:
		return "config_error"
	case BadgeDBError:
		return "db_error"
	default:
		return "not_valid"
	}
}

// Badge 输出固定尺寸的 SVG ，相同输入得到完全相同的字节
func Badge(kind BadgeKind) []byte {
	fill, label := kind.style()
	return []byte(fmt.Sprintf(badgeTemplate, constants.BadgeWidth, constants.BadgeHeight, fill, label))
}
