package config

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrDatastoreNotConfigured = errors.New("datastore env vars missing (DB_URL / DB_SERVICE_KEY)")
	ErrBaseURLNotConfigured   = errors.New("base URL not configured")
)

type Config struct {
	System struct {
		Mode    string `envconfig:"MODE"`                   // 运行模式，以 p 开头视为生产环境
		Listen  string `envconfig:"LISTEN" default:":1323"` // 监听地址
		BaseURL string `envconfig:"BASE_URL"`               // 对外公开的站点地址，二维码指向这里的证书页面
	}
	Datastore struct {
		URL        string        `envconfig:"DB_URL"`                  // Postgres 数据库的连接地址（不含密码）
		ServiceKey string        `envconfig:"DB_SERVICE_KEY"`          // 数据库的服务凭据，作为连接密码使用
		Timeout    time.Duration `envconfig:"DB_TIMEOUT" default:"5s"` // 单次查询的超时时间
	}
	Cache struct {
		RedisConnectionString string `envconfig:"REDIS_CONN"` // Redis 的连接字符串，留空则不缓存二维码
	}
	Policy struct {
		CheckExpiry       bool   `envconfig:"CHECK_EXPIRY" default:"true"`                                  // 过期时间是否参与有效性判断
		BadgeCacheControl string `envconfig:"BADGE_CACHE_CONTROL" default:"public, max-age=60"`             // 徽章的缓存策略，状态可能变化所以要短
		QRCacheControl    string `envconfig:"QR_CACHE_CONTROL" default:"public, max-age=86400, immutable"` // 二维码内容只取决于编号，可以长期缓存
	}
}

func (c *Config) IsProd() bool {
	return strings.HasPrefix(strings.ToLower(c.System.Mode), "p")
}
