package chart

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gonum.org/v1/plot/vg"
)

const (
	DefaultTimeout = 30 * time.Second
	// 与 matplotlib 默认画布一致
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

type renderer struct {
	timeout  time.Duration
	width    vg.Length
	height   vg.Length
	barWidth vg.Length
	tempDir  string
}

type Option func(r *renderer)

func WithTimeout(timeout time.Duration) Option {
	return func(r *renderer) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithSize 画布尺寸, 单位英寸
func WithSize(width, height float64) Option {
	return func(r *renderer) {
		if width > 0 && height > 0 {
			r.width = vg.Length(width) * vg.Inch
			r.height = vg.Length(height) * vg.Inch
		}
	}
}

func WithTempDir(dir string) Option {
	return func(r *renderer) {
		r.tempDir = dir
	}
}

func NewRenderer(opts ...Option) Renderer {
	r := &renderer{
		timeout:  DefaultTimeout,
		width:    DefaultWidth,
		height:   DefaultHeight,
		barWidth: vg.Points(20),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *renderer) Render(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fig, err := runScript(ctx, code)
	if err != nil {
		return "", err
	}
	p, err := fig.plot(r.barWidth)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(r.tempDir, "chart-*.png")
	if err != nil {
		return "", err
	}
	name := tmp.Name()
	defer func() {
		if err := os.Remove(name); err != nil {
			slog.Warn("failed to remove chart temp file", "file", name, "error", err)
		}
	}()
	if err = tmp.Close(); err != nil {
		return "", err
	}

	if err = p.Save(r.width, r.height, name); err != nil {
		return "", fmt.Errorf("save chart: %w", err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
