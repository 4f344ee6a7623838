package loader

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// WebLoader 抓取网页正文。source 为 URL，正文抽取走 readability，
// 导航、广告等噪音不进入语料。
type WebLoader struct {
	Timeout time.Duration
}

func (l *WebLoader) Load(ctx context.Context, source string) ([]Page, error) {
	if _, err := url.ParseRequestURI(source); err != nil {
		return nil, fmt.Errorf("Invalid web source %s: %w", source, err)
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = time.Second * 30
	}

	article, err := readability.FromURL(source, timeout)
	if err != nil {
		return nil, fmt.Errorf("Failed to extract article from %s: %w", source, err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, nil
	}

	if article.Title != "" {
		text = article.Title + "\n\n" + text
	}
	return []Page{{Content: text, PageNumber: 1}}, nil
}
