package constants

import "time"

const (
	CacheKeyQRCode = "registry:qr:%s" // %s -> 目标地址的 sha256
)

const (
	CacheExpireQRCode = 24 * time.Hour
)
