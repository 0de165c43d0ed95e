package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

var (
	ErrInvalidUTF8 = errors.New("content is not valid utf-8")
	ErrNoContent   = errors.New("file has no content")
)

var imageExts = []string{".png", ".jpg", ".jpeg"}

func (s *service) ExtractFile(ctx context.Context, file File) (text string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while extracting file", "file", file.Name, "panic", r)
			text = fileError(file.Name, fmt.Errorf("%v", r))
		}
	}()

	text, err := readFile(file)
	if err != nil {
		slog.Warn("failed to extract file", "file", file.Name, "error", err)
		return fileError(file.Name, err)
	}
	return text
}

func fileError(name string, err error) string {
	return fmt.Sprintf("[Error reading file %s: %s]", name, err)
}

// readFile 按文件后缀 (区分大小写) 选择解析方式, 不看文件内容
func readFile(file File) (string, error) {
	if file.Content == nil {
		return "", ErrNoContent
	}
	name := file.Name

	switch {
	case strings.HasSuffix(name, ".txt"):
		data, err := io.ReadAll(file.Content)
		if err != nil {
			return "", err
		}
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}
		return string(data), nil
	case strings.HasSuffix(name, ".csv"):
		tbl, err := readCSV(file.Content)
		if err != nil {
			return "", err
		}
		return tbl.String(), nil
	case strings.HasSuffix(name, ".xlsx"):
		tbl, err := readXLSX(file.Content)
		if err != nil {
			return "", err
		}
		return tbl.String(), nil
	case lo.SomeBy(imageExts, func(ext string) bool { return strings.HasSuffix(name, ext) }):
		// 图片内容不会发给模型
		return fmt.Sprintf("[Image uploaded: %s]", name), nil
	default:
		return fmt.Sprintf("[Unsupported file type: %s]", name), nil
	}
}
