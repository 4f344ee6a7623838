package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// csvBatchRows 每页聚合的行数
const csvBatchRows = 50

// CSVLoader 结构化表格按行读入，每 csvBatchRows 行合成一页，
// 页号单调递增。单行内各列以逗号拼接。
type CSVLoader struct{}

func (l *CSVLoader) Load(ctx context.Context, source string) ([]Page, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("Failed to open csv %s: %w", source, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Failed to parse csv %s: %w", source, err)
	}

	var (
		pages []Page
		lines []string
	)
	flush := func() {
		if len(lines) == 0 {
			return
		}
		pages = append(pages, Page{
			Content:    strings.Join(lines, "\n"),
			PageNumber: len(pages) + 1,
		})
		lines = lines[:0]
	}

	for _, record := range records {
		line := strings.TrimSpace(strings.Join(record, ","))
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= csvBatchRows {
			flush()
		}
	}
	flush()

	return pages, nil
}
