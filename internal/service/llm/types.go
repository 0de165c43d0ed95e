package llm

import (
	"context"
)

type Question struct {
	Content string
}

type Answer struct {
	Content     string
	InputToken  int
	OutputToken int
}

type Service interface {
	// AskOnce 单次问答, 不保留上下文
	AskOnce(ctx context.Context, q Question) (Answer, error)
}
