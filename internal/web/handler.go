package web

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/KNICEX/analyst-agent/internal/entity"
	"github.com/KNICEX/analyst-agent/internal/repo"
	"github.com/KNICEX/analyst-agent/internal/service/analyst"
	"github.com/KNICEX/analyst-agent/internal/service/extract"
	"github.com/samber/lo"
)

const (
	DefaultMaxMemory = 32 << 20

	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type Handler struct {
	svc       analyst.Service
	history   repo.QueryRepo
	maxMemory int64
}

type Option func(h *Handler)

// WithHistory 开启 GET /history
func WithHistory(queryRepo repo.QueryRepo) Option {
	return func(h *Handler) {
		h.history = queryRepo
	}
}

// WithMaxMemory multipart 表单在内存中保留的最大字节数, 超出部分落盘
func WithMaxMemory(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxMemory = n
		}
	}
}

func NewHandler(svc analyst.Service, opts ...Option) *Handler {
	h := &Handler{
		svc:       svc,
		maxMemory: DefaultMaxMemory,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", h.handleAsk)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	if h.history != nil {
		mux.HandleFunc("GET /history", h.handleHistory)
	}
	return withRequestID(withCORS(mux))
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	req, cleanup, err := h.parseRequest(r)
	defer cleanup()
	if err != nil {
		slog.Warn("invalid request form", "request_id", RequestID(r.Context()), "error", err)
		writeError(w, err)
		return
	}

	artifact, err := h.svc.Ask(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeArtifact(w, artifact)
}

// parseRequest 支持 multipart/form-data, 也兼容不带文件的 urlencoded 表单.
// 返回的 cleanup 负责关闭上传文件并删除落盘的临时文件.
func (h *Handler) parseRequest(r *http.Request) (analyst.Request, func(), error) {
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			_ = f.Close()
		}
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	err := r.ParseMultipartForm(h.maxMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return analyst.Request{}, cleanup, err
	}

	req := analyst.Request{
		ID:       RequestID(r.Context()),
		Question: r.PostForm.Get("question"),
		Links:    r.PostForm["links"],
	}
	if r.MultipartForm == nil {
		return req, cleanup, nil
	}

	for _, fh := range r.MultipartForm.File["files"] {
		f, err := fh.Open()
		if err != nil {
			return analyst.Request{}, cleanup, err
		}
		opened = append(opened, f)
		req.Files = append(req.Files, extract.File{Name: fh.Filename, Content: f})
	}
	return req, cleanup, nil
}

type queryView struct {
	Id          int64     `json:"id"`
	RequestId   string    `json:"request_id"`
	Question    string    `json:"question"`
	FileCount   int       `json:"file_count"`
	LinkCount   int       `json:"link_count"`
	AnswerKind  string    `json:"answer_kind,omitempty"`
	Error       string    `json:"error,omitempty"`
	InputToken  int       `json:"input_token"`
	OutputToken int       `json:"output_token"`
	DurationMs  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, errors.New("limit must be a positive integer"))
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	queries, err := h.history.FindRecent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to load query history", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(queries, func(q entity.Query, _ int) queryView {
		return queryView{
			Id:          q.Id,
			RequestId:   q.RequestId,
			Question:    q.Question,
			FileCount:   q.FileCount,
			LinkCount:   q.LinkCount,
			AnswerKind:  q.AnswerKind,
			Error:       q.Error,
			InputToken:  q.InputToken,
			OutputToken: q.OutputToken,
			DurationMs:  q.DurationMs,
			CreatedAt:   q.CreatedAt,
		}
	}))
}
