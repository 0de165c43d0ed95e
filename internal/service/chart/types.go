package chart

import (
	"context"
	"errors"
)

// LibraryName 绑定给图表脚本的包名, 模型输出里出现它时视为图表代码
const LibraryName = "plt"

var (
	ErrEmptyFigure  = errors.New("chart script did not draw anything")
	ErrInvalidChart = errors.New("invalid chart data")
)

type Kind int

const (
	KindText Kind = iota
	KindChart
)

func (k Kind) String() string {
	switch k {
	case KindChart:
		return "chart"
	default:
		return "text"
	}
}

type Classification struct {
	Kind Kind
	// Code 去掉围栏之后的脚本, 仅 KindChart 时有值
	Code string
}

// Renderer 执行图表脚本并返回 base64 编码的 PNG
type Renderer interface {
	Render(ctx context.Context, code string) (string, error)
}
