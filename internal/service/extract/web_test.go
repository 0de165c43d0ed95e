package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFetchLink(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><title>Quarterly report</title><style>body{color:red}</style></head>
<body><h1>Revenue</h1><script>var secret = 1;</script><p>Revenue grew   by 12%.</p><!-- hidden --></body></html>`)
	})
	mux.HandleFunc("/long", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<p>"+strings.Repeat("é", 5000)+"</p>")
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "page not found", http.StatusNotFound)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := NewService(WithHTTPClient(srv.Client()), WithLinkTimeout(200*time.Millisecond))

	t.Run("visible text only", func(t *testing.T) {
		text := svc.FetchLink(context.Background(), srv.URL+"/page")
		assert.Contains(t, text, "Quarterly report")
		assert.Contains(t, text, "Revenue grew by 12%.")
		assert.NotContains(t, text, "secret")
		assert.NotContains(t, text, "color:red")
		assert.NotContains(t, text, "hidden")
	})

	t.Run("truncated to max chars", func(t *testing.T) {
		text := svc.FetchLink(context.Background(), srv.URL+"/long")
		assert.Equal(t, DefaultLinkMaxChars, utf8.RuneCountInString(text))
	})

	t.Run("error page still yields text", func(t *testing.T) {
		text := svc.FetchLink(context.Background(), srv.URL+"/missing")
		assert.Contains(t, text, "page not found")
	})

	t.Run("timeout", func(t *testing.T) {
		text := svc.FetchLink(context.Background(), srv.URL+"/slow")
		assert.True(t, strings.HasPrefix(text, "[Error fetching "+srv.URL+"/slow:"), text)
	})

	t.Run("invalid url", func(t *testing.T) {
		text := svc.FetchLink(context.Background(), "")
		assert.True(t, strings.HasPrefix(text, "[Error fetching :"), text)
	})
}

func TestFetchLink_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	text := NewService().FetchLink(context.Background(), url)
	assert.Contains(t, text, "[Error fetching "+url)
}

func TestFetchLink_CustomMaxChars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<p>abcdefghij</p>")
	}))
	defer srv.Close()

	text := NewService(WithLinkMaxChars(4)).FetchLink(context.Background(), srv.URL)
	assert.Equal(t, "abcd", text)
}
