package analyst

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KNICEX/analyst-agent/internal/entity"
	"github.com/KNICEX/analyst-agent/internal/repo"
	"github.com/KNICEX/analyst-agent/internal/service/chart"
	"github.com/KNICEX/analyst-agent/internal/service/extract"
	"github.com/KNICEX/analyst-agent/internal/service/llm"
)

type service struct {
	extractor extract.Service
	llmSvc    llm.Service
	renderer  chart.Renderer

	history repo.QueryRepo
}

type Option func(s *service)

// WithHistory 记录每次请求的元数据
func WithHistory(queryRepo repo.QueryRepo) Option {
	return func(s *service) {
		s.history = queryRepo
	}
}

func NewService(extractor extract.Service, llmSvc llm.Service, renderer chart.Renderer, opts ...Option) Service {
	svc := &service{
		extractor: extractor,
		llmSvc:    llmSvc,
		renderer:  renderer,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Ask(ctx context.Context, req Request) (artifact Artifact, err error) {
	start := time.Now()
	var answer llm.Answer
	defer func() {
		s.record(ctx, req, artifact, answer, err, time.Since(start))
	}()

	if strings.TrimSpace(req.Question) == "" {
		return Artifact{}, ErrEmptyQuestion
	}

	content := BuildContext(req.Question, s.collect(ctx, req))

	answer, err = s.llmSvc.AskOnce(ctx, llm.Question{Content: content})
	if err != nil {
		slog.Error("failed to ask llm", "request_id", req.ID, "error", err)
		return Artifact{}, fmt.Errorf("%w: %w", ErrRemoteCall, err)
	}

	cls := chart.Classify(answer.Content)
	if cls.Kind == chart.KindText {
		return Artifact{Kind: chart.KindText, Text: strings.TrimSpace(answer.Content)}, nil
	}

	image, err := s.renderer.Render(ctx, cls.Code)
	if err != nil {
		slog.Error("failed to render chart", "request_id", req.ID, "error", err)
		return Artifact{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return Artifact{Kind: chart.KindChart, Image: image}, nil
}

// collect 依次提取文件和链接, 顺序与输入一致
func (s *service) collect(ctx context.Context, req Request) []string {
	fragments := make([]string, 0, len(req.Files)+len(req.Links))
	for _, file := range req.Files {
		fragments = append(fragments, s.extractor.ExtractFile(ctx, file))
	}
	for _, link := range req.Links {
		fragments = append(fragments, s.extractor.FetchLink(ctx, link))
	}
	return fragments
}

func (s *service) record(ctx context.Context, req Request, artifact Artifact, answer llm.Answer, err error, cost time.Duration) {
	attrs := []any{
		"request_id", req.ID,
		"files", len(req.Files),
		"links", len(req.Links),
		"cost", cost,
	}
	if err != nil {
		slog.Warn("question failed", append(attrs, "error", err)...)
	} else {
		slog.Info("question answered", append(attrs, "kind", artifact.Kind)...)
	}

	if s.history == nil {
		return
	}
	query := entity.Query{
		RequestId:   req.ID,
		Question:    req.Question,
		FileCount:   len(req.Files),
		LinkCount:   len(req.Links),
		InputToken:  answer.InputToken,
		OutputToken: answer.OutputToken,
		DurationMs:  cost.Milliseconds(),
		CreatedAt:   time.Now(),
	}
	if err != nil {
		query.Error = err.Error()
	} else {
		query.AnswerKind = artifact.Kind.String()
	}
	// 请求可能已经结束, 记录不跟随请求取消
	if _, rerr := s.history.Create(context.WithoutCancel(ctx), query); rerr != nil {
		slog.Error("failed to save query history", "request_id", req.ID, "error", rerr)
	}
}
