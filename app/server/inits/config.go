package inits

import (
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"human-sourced-registry/app/server/config"
)

func Config() (*config.Config, error) {
	var cfg config.Config

	// 按 envconfig 标签从环境变量映射，嵌套结构体的字段直接使用标签名即可读取
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	return &cfg, nil
}
