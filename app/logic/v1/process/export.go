package process

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dataprep-ai/dataprep/pkg/errors"
	"github.com/dataprep-ai/dataprep/pkg/types"
)

// exportFinal 把文档去重后保留的 QA 对导出为 <文件名>_final.csv，
// 上传到目标数据集路径并打上最终产物标签。
func (p *Processor) exportFinal(ctx context.Context, task types.Task, doc types.Document) error {
	rows, err := p.store.QuestionAnswerCleanStore().ListUniqueByDocumentID(ctx, doc.ID)
	if err != nil {
		return errors.New("Processor.exportFinal.QuestionAnswerCleanStore.ListUniqueByDocumentID", "failed to list clean results", err)
	}

	base := strings.TrimSuffix(doc.FileName, filepath.Ext(doc.FileName))
	fileName := fmt.Sprintf("%s_final.csv", filepath.Base(base))
	localPath := filepath.Join(p.downloadDir, fileName)

	if err := os.MkdirAll(p.downloadDir, 0o755); err != nil {
		return errors.New("Processor.exportFinal.MkdirAll", "failed to create export dir", err)
	}
	file, err := os.Create(localPath)
	if err != nil {
		return errors.New("Processor.exportFinal.Create", "failed to create export file", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"q", "a", "file_name"}); err != nil {
		file.Close()
		return errors.New("Processor.exportFinal.Write", "failed to write export file", err)
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Question, row.Answer, row.FileName}); err != nil {
			file.Close()
			return errors.New("Processor.exportFinal.Write", "failed to write export file", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return errors.New("Processor.exportFinal.Flush", "failed to write export file", err)
	}
	if err := file.Close(); err != nil {
		return errors.New("Processor.exportFinal.Close", "failed to close export file", err)
	}

	if p.storage == nil {
		slog.Info("Object storage not configured, keep export locally",
			slog.String("task_id", task.ID),
			slog.String("path", localPath))
		return nil
	}

	reader, err := os.Open(localPath)
	if err != nil {
		return errors.New("Processor.exportFinal.Open", "failed to open export file", err)
	}
	defer reader.Close()

	key := fmt.Sprintf("dataset/%s/%s/%s", task.PostDatasetName, task.PostDatasetVersion, fileName)
	tags := map[string]string{
		"phase":        "final",
		"object_type":  "QA",
		"object_count": strconv.Itoa(len(rows)),
	}
	if err := p.storage.Upload(ctx, key, reader, tags); err != nil {
		return errors.New("Processor.exportFinal.Storage.Upload", "failed to upload export file", err)
	}

	slog.Info("Final data exported",
		slog.String("task_id", task.ID),
		slog.String("key", key),
		slog.Int("count", len(rows)))
	return nil
}
