package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLoader 逐页抽取 PDF 纯文本。抽取失败的单页跳过，不中断整篇。
type PDFLoader struct{}

func (l *PDFLoader) Load(ctx context.Context, source string) ([]Page, error) {
	file, reader, err := pdf.Open(source)
	if err != nil {
		return nil, fmt.Errorf("Failed to open pdf %s: %w", source, err)
	}
	defer file.Close()

	var pages []Page
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		pages = append(pages, Page{Content: text, PageNumber: i})
	}

	return pages, nil
}
