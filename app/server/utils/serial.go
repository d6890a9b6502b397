package utils

import (
	"net/url"
	"strings"
)

// CleanSerialParam 去掉可选的扩展名（不区分大小写）。
// escaped 表示参数仍是原始的转义形式（路由按 RawPath 匹配时），这时解码一次；否则已经解码过，不再处理
func CleanSerialParam(raw string, escaped bool, ext string) string {
	s := raw
	if escaped {
		if decoded, err := url.PathUnescape(s); err == nil {
			s = decoded
		}
	}

	if ext != "" && len(s) >= len(ext) && strings.EqualFold(s[len(s)-len(ext):], ext) {
		s = s[:len(s)-len(ext)]
	}

	return strings.TrimSpace(s)
}
