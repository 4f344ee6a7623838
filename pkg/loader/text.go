package loader

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TextLoader 纯文本文件，整体算一页
type TextLoader struct{}

func (l *TextLoader) Load(ctx context.Context, source string) ([]Page, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("Failed to read text file %s: %w", source, err)
	}

	text := strings.TrimSpace(string(content))
	if text == "" {
		return nil, nil
	}
	return []Page{{Content: text, PageNumber: 1}}, nil
}
