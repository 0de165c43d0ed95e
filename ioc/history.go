package ioc

import (
	"fmt"
	"time"

	"github.com/KNICEX/analyst-agent/internal/repo"
	"github.com/KNICEX/analyst-agent/internal/schedule"
	"github.com/KNICEX/analyst-agent/internal/service/history"
	"github.com/spf13/viper"
)

type historyConfig struct {
	Retention     time.Duration `mapstructure:"retention"`
	PruneInterval time.Duration `mapstructure:"prune_interval"`
}

// loadHistoryConfig 保留期和清理间隔必须为正, 否则启动即失败
func loadHistoryConfig() historyConfig {
	viper.SetDefault("history.retention", 7*24*time.Hour)
	viper.SetDefault("history.prune_interval", time.Hour)

	cfg := historyConfig{
		Retention:     viper.GetDuration("history.retention"),
		PruneInterval: viper.GetDuration("history.prune_interval"),
	}
	if cfg.Retention <= 0 {
		panic(fmt.Sprintf("history.retention must be positive, got %s", cfg.Retention))
	}
	if cfg.PruneInterval <= 0 {
		panic(fmt.Sprintf("history.prune_interval must be positive, got %s", cfg.PruneInterval))
	}
	return cfg
}

// InitPruneTask 返回历史清理任务及其执行间隔
func InitPruneTask(queryRepo repo.QueryRepo) (schedule.Task, time.Duration) {
	cfg := loadHistoryConfig()
	return history.NewPruneTask(queryRepo, cfg.Retention), cfg.PruneInterval
}
