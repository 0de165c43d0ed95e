package extract

import (
	"context"
	"io"
)

// File 用户上传的附件
type File struct {
	Name    string
	Content io.Reader
}

// Service 把附件和链接转成可以拼进 prompt 的纯文本.
// 单个输入失败不会返回 error, 而是返回一段内联的错误描述.
type Service interface {
	ExtractFile(ctx context.Context, file File) string
	FetchLink(ctx context.Context, link string) string
}
