package types

import "strings"

type Status string

const (
	StatusActive      Status = "active"
	StatusConditional Status = "conditional"
	StatusExpired     Status = "expired"
	StatusSuspended   Status = "suspended"
	StatusRevoked     Status = "revoked"
)

// Statuses 是完整的五种状态，按展示顺序排列
var Statuses = []Status{
	StatusActive,
	StatusConditional,
	StatusExpired,
	StatusSuspended,
	StatusRevoked,
}

// ParseStatus 不区分大小写；不认识的值返回 false
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Statuses {
		if st == known {
			return st, true
		}
	}
	return "", false
}

func (s Status) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
