package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/KNICEX/analyst-agent/internal/repo"
	"github.com/KNICEX/analyst-agent/internal/schedule"
)

// PruneTask 删除超过保留期的问答记录
type PruneTask struct {
	repo      repo.QueryRepo
	retention time.Duration
	now       func() time.Time
}

func NewPruneTask(queryRepo repo.QueryRepo, retention time.Duration) schedule.Task {
	return &PruneTask{
		repo:      queryRepo,
		retention: retention,
		now:       time.Now,
	}
}

func (t *PruneTask) Run(ctx context.Context) error {
	before := t.now().Add(-t.retention)
	deleted, err := t.repo.DeleteBefore(ctx, before)
	if err != nil {
		return err
	}
	if deleted > 0 {
		slog.Info("pruned query history", "deleted", deleted, "before", before)
	}
	return nil
}

func (t *PruneTask) Name() string {
	return "query history prune task"
}
