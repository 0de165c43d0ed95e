package ioc

import (
	"time"

	"github.com/KNICEX/analyst-agent/internal/service/chart"
	"github.com/KNICEX/analyst-agent/internal/service/extract"
	"github.com/spf13/viper"
)

func InitExtractor() extract.Service {
	type Config struct {
		LinkTimeout  time.Duration `mapstructure:"link_timeout"`
		LinkMaxChars int           `mapstructure:"link_max_chars"`
	}
	viper.SetDefault("extract.link_timeout", extract.DefaultLinkTimeout)
	viper.SetDefault("extract.link_max_chars", extract.DefaultLinkMaxChars)

	var cfg Config
	if err := viper.UnmarshalKey("extract", &cfg); err != nil {
		panic(err)
	}
	return extract.NewService(
		extract.WithLinkTimeout(cfg.LinkTimeout),
		extract.WithLinkMaxChars(cfg.LinkMaxChars),
	)
}

func InitRenderer() chart.Renderer {
	type Config struct {
		Timeout time.Duration `mapstructure:"timeout"`
		Width   float64       `mapstructure:"width"`
		Height  float64       `mapstructure:"height"`
		TempDir string        `mapstructure:"temp_dir"`
	}
	viper.SetDefault("chart.timeout", chart.DefaultTimeout)
	viper.SetDefault("chart.width", 6.4)
	viper.SetDefault("chart.height", 4.8)

	var cfg Config
	if err := viper.UnmarshalKey("chart", &cfg); err != nil {
		panic(err)
	}
	return chart.NewRenderer(
		chart.WithTimeout(cfg.Timeout),
		chart.WithSize(cfg.Width, cfg.Height),
		chart.WithTempDir(cfg.TempDir),
	)
}
