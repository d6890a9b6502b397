package inits

import (
	"fmt"
	"human-sourced-registry/app/server/config"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB 打开到外部数据库的连接。数据由外部签发流程维护，这里只读，不做迁移。
func DB(endpoint string, serviceKey string) (db *gorm.DB, err error) {
	if endpoint == "" || serviceKey == "" {
		return nil, config.ErrDatastoreNotConfigured
	}

	dsn, err := DSN(endpoint, serviceKey)
	if err != nil {
		return nil, err
	}

	// 托管数据库一般通过连接池（事务模式）访问，需要使用简单协议
	if db, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true, // 不在启动时连接，连接失败按请求报告
		Logger:               gormlogger.Default.LogMode(gormlogger.Warn),
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// DSN 把服务凭据作为密码填进连接地址
func DSN(endpoint string, serviceKey string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid DB_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("invalid DB_URL: unsupported scheme %q", u.Scheme)
	}

	username := "postgres"
	if u.User != nil && u.User.Username() != "" {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, serviceKey)

	return u.String(), nil
}
