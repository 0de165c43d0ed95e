package ioc

import (
	"context"

	"github.com/KNICEX/analyst-agent/internal/service/analyst"
	"github.com/KNICEX/analyst-agent/internal/service/llm"
	"github.com/KNICEX/analyst-agent/internal/service/llm/gemini"
	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

type geminiConfig struct {
	ApiKey      []string `mapstructure:"api_key"`
	Model       string   `mapstructure:"model"`
	Temperature *float32 `mapstructure:"temperature"`
}

func loadGeminiConfig() geminiConfig {
	// 环境变量优先于配置文件
	if err := viper.BindEnv("llm.gemini.api_key", "GEMINI_API_KEY"); err != nil {
		panic(err)
	}
	viper.SetDefault("llm.gemini.model", gemini.DefaultModel)

	var cfg geminiConfig
	if err := viper.UnmarshalKey("llm.gemini", &cfg); err != nil {
		panic(err)
	}
	// UnmarshalKey 读不到绑定在子 key 上的环境变量
	cfg.ApiKey = viper.GetStringSlice("llm.gemini.api_key")
	if len(cfg.ApiKey) == 0 || cfg.ApiKey[0] == "" {
		panic("no gemini api key set, configure llm.gemini.api_key or GEMINI_API_KEY")
	}
	return cfg
}

func InitGeminiCli() *genai.Client {
	cfg := loadGeminiConfig()
	cli, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.ApiKey[0]))
	if err != nil {
		panic(err)
	}
	return cli
}

func InitLLMService(cli *genai.Client) llm.Service {
	cfg := loadGeminiConfig()
	opts := []gemini.Option{
		gemini.WithModel(cfg.Model),
		gemini.WithSystemInstruction(analyst.SystemPrompt),
	}
	if cfg.Temperature != nil {
		opts = append(opts, gemini.WithTemperature(*cfg.Temperature))
	}
	return gemini.NewService(cli, opts...)
}
