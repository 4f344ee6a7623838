package loader

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const (
	DEFAULT_CHUNK_SIZE    = 500
	DEFAULT_CHUNK_OVERLAP = 50

	encodingName = "cl100k_base"
)

// Splitter 基于 token 计数的滑动窗口切片器
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	encoder      *tiktoken.Tiktoken
}

func NewSplitter(chunkSize, chunkOverlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		chunkSize = DEFAULT_CHUNK_SIZE
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = DEFAULT_CHUNK_OVERLAP
	}

	encoder, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("Failed to load tiktoken encoding %s: %w", encodingName, err)
	}

	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		encoder:      encoder,
	}, nil
}

// Split 将一段文本按 token 预算切成带重叠的片段
func (s *Splitter) Split(text string) []string {
	tokens := s.encoder.Encode(text, nil, nil)
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) <= s.chunkSize {
		return []string{text}
	}

	var chunks []string
	step := s.chunkSize - s.chunkOverlap
	for start := 0; start < len(tokens); start += step {
		end := start + s.chunkSize
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, s.encoder.Decode(tokens[start:end]))
		if end == len(tokens) {
			break
		}
	}
	return chunks
}

// SplitPages 切分已读入的分页，产出仍携带原始页号的分片序列
func (s *Splitter) SplitPages(pages []Page) []Page {
	var chunks []Page
	for _, page := range pages {
		for _, content := range s.Split(page.Content) {
			chunks = append(chunks, Page{
				Content:    content,
				PageNumber: page.PageNumber,
			})
		}
	}
	return chunks
}
