package schedule

import (
	"context"
	"log/slog"
	"time"
)

type Task interface {
	Run(ctx context.Context) error
	Name() string
}

// RunEvery 立即执行一次, 之后每隔 interval 执行, ctx 结束时返回.
// 单次执行失败只记录日志.
func RunEvery(ctx context.Context, interval time.Duration, task Task) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := task.Run(ctx); err != nil {
			slog.Error("scheduled task failed", "task", task.Name(), "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
