package extract

import (
	"net/http"
	"time"
)

const (
	DefaultLinkTimeout  = 10 * time.Second
	DefaultLinkMaxChars = 2000
	// 网页最多读取 2MB
	maxBodySize = 2 << 20
	userAgent   = "Mozilla/5.0 (compatible; analyst-agent/1.0)"
)

type service struct {
	client      *http.Client
	linkTimeout time.Duration
	maxChars    int
}

type Option func(s *service)

func WithHTTPClient(client *http.Client) Option {
	return func(s *service) {
		s.client = client
	}
}

func WithLinkTimeout(timeout time.Duration) Option {
	return func(s *service) {
		if timeout > 0 {
			s.linkTimeout = timeout
		}
	}
}

func WithLinkMaxChars(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxChars = n
		}
	}
}

func NewService(opts ...Option) Service {
	svc := &service{
		client:      http.DefaultClient,
		linkTimeout: DefaultLinkTimeout,
		maxChars:    DefaultLinkMaxChars,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}
