package models

import (
	"human-sourced-registry/app/server/types"
	"time"
)

// 只有 active 算有效；启用过期检查时，到达过期时间（含当时）即失效
func validAt(status string, expiresAt *time.Time, now time.Time, checkExpiry bool) bool {
	if st, ok := types.ParseStatus(status); !ok || st != types.StatusActive {
		return false
	}

	if checkExpiry && expiresAt != nil && !expiresAt.IsZero() && !expiresAt.After(now) {
		return false
	}

	return true
}
