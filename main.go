package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/KNICEX/analyst-agent/internal/repo"
	"github.com/KNICEX/analyst-agent/internal/schedule"
	"github.com/KNICEX/analyst-agent/internal/service/analyst"
	"github.com/KNICEX/analyst-agent/internal/web"
	"github.com/KNICEX/analyst-agent/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {
	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.dev.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()
	ioc.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	geminiCli := ioc.InitGeminiCli()
	defer geminiCli.Close()
	llmSvc := ioc.InitLLMService(geminiCli)

	var (
		svcOpts []analyst.Option
		webOpts = []web.Option{web.WithMaxMemory(viper.GetInt64("server.max_memory"))}
	)
	if viper.GetBool("history.enabled") {
		db := ioc.InitDB()
		if err := repo.InitTables(db); err != nil {
			panic(err)
		}
		queryRepo := repo.NewQueryRepo(db)
		svcOpts = append(svcOpts, analyst.WithHistory(queryRepo))
		webOpts = append(webOpts, web.WithHistory(queryRepo))

		task, interval := ioc.InitPruneTask(queryRepo)
		go schedule.RunEvery(ctx, interval, task)
	}

	svc := analyst.NewService(ioc.InitExtractor(), llmSvc, ioc.InitRenderer(), svcOpts...)
	server := ioc.InitWebServer(web.NewHandler(svc, webOpts...))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
		}
	}()

	slog.Info("analyst agent listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}
