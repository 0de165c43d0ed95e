package ioc

import (
	"net/http"
	"time"

	"github.com/KNICEX/analyst-agent/internal/web"
	"github.com/spf13/viper"
)

func InitWebServer(h *web.Handler) *http.Server {
	type Config struct {
		Addr              string        `mapstructure:"addr"`
		ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	}
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.read_header_timeout", 10*time.Second)

	var cfg Config
	if err := viper.UnmarshalKey("server", &cfg); err != nil {
		panic(err)
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
