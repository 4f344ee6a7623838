// Package loader 把不同格式的原始文档读成分页纯文本，
// 并提供基于 token 的切片器。
package loader

import (
	"context"
	"errors"

	"github.com/dataprep-ai/dataprep/pkg/types"
)

// ErrUnsupportedFileType 任务配置了未接入的文档格式
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Page 文档中的一页。无页概念的格式（txt、网页）整体算第一页。
type Page struct {
	Content    string
	PageNumber int
}

// Loader 单一格式的文档读取器
type Loader interface {
	Load(ctx context.Context, source string) ([]Page, error)
}

// For 根据文档格式返回对应的读取器
func For(fileType types.DocumentType) (Loader, error) {
	switch fileType {
	case types.DOCUMENT_TYPE_PDF:
		return &PDFLoader{}, nil
	case types.DOCUMENT_TYPE_DOCX:
		return &DocxLoader{}, nil
	case types.DOCUMENT_TYPE_WEB:
		return &WebLoader{}, nil
	case types.DOCUMENT_TYPE_TXT:
		return &TextLoader{}, nil
	case types.DOCUMENT_TYPE_CSV:
		return &CSVLoader{}, nil
	default:
		return nil, ErrUnsupportedFileType
	}
}
