package analyst

import (
	"context"

	"github.com/KNICEX/analyst-agent/internal/service/chart"
	"github.com/KNICEX/analyst-agent/internal/service/extract"
)

type Request struct {
	// ID 请求标识, 仅用于日志和历史记录
	ID       string
	Question string
	Files    []extract.File
	Links    []string
}

// Artifact 文本答案和图片二选一
type Artifact struct {
	Kind  chart.Kind
	Text  string
	Image string // base64 编码的 PNG
}

type Service interface {
	Ask(ctx context.Context, req Request) (Artifact, error)
}
