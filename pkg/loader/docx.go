package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/document"
)

// DocxLoader 按段落抽取 Word 文档文本，合并为单页
type DocxLoader struct{}

func (l *DocxLoader) Load(ctx context.Context, source string) ([]Page, error) {
	doc, err := document.Open(source)
	if err != nil {
		return nil, fmt.Errorf("Failed to open docx %s: %w", source, err)
	}
	defer doc.Close()

	var b strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			b.WriteString(run.Text())
		}
		b.WriteString("\n")
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, nil
	}
	return []Page{{Content: text, PageNumber: 1}}, nil
}
