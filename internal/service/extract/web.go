package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

func (s *service) FetchLink(ctx context.Context, link string) string {
	text, err := s.fetch(ctx, link)
	if err != nil {
		slog.Warn("failed to fetch link", "link", link, "error", err)
		return fmt.Sprintf("[Error fetching %s: %s]", link, err)
	}
	return text
}

func (s *service) fetch(ctx context.Context, link string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.linkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// 和浏览器一样, 非 200 的页面也取其正文
	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	return truncate(visibleText(doc), s.maxChars), nil
}

func visibleText(doc *html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				parts = append(parts, text)
			}
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(parts, "\n")
}

// truncate 按字符 (rune) 截断
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
