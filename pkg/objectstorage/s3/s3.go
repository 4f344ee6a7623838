// Package s3 对象存储访问层，兼容 minio 等 s3 协议实现。
// 任务源文件从 pre 数据集前缀下载，最终产物带标签上传到 post 数据集前缀。
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3 struct {
	Endpoint string
	Region   string
	Bucket   string
	ak       string
	sk       string
	cli      *s3.Client
}

func NewS3Client(endpoint, region, bucket, ak, sk string) *S3 {
	cli := &S3{
		Endpoint: endpoint,
		Region:   region,
		Bucket:   bucket,
		ak:       ak,
		sk:       sk,
	}

	if err := cli.setup(context.Background()); err != nil {
		panic(err)
	}

	return cli
}

func (s *S3) setup(ctx context.Context) error {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID: s.ak, SecretAccessKey: s.sk,
			},
		}),
		config.WithRegion(s.Region),
		config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           s.Endpoint,
				SigningRegion: s.Region,
			}, nil
		})))
	if err != nil {
		return err
	}

	s.cli = s3.NewFromConfig(cfg, func(o *s3.Options) {
		// minio 只支持路径样式 URL（endpoint/bucket 而不是 bucket.endpoint）
		o.UsePathStyle = true
	})
	return nil
}

// Download 将对象落盘到 localDir，返回本地路径
func (s *S3) Download(ctx context.Context, key, localDir string) (string, error) {
	key = strings.TrimPrefix(key, "/")

	resp, err := s.cli.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("Failed to get object %s: %w", key, err)
	}
	defer resp.Body.Close()

	localPath := filepath.Join(localDir, filepath.Base(key))
	file, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err = io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("Failed to write local file %s: %w", localPath, err)
	}
	return localPath, nil
}

// Upload 上传对象并附带标签，tags 以 key=value 写入对象 tagging
func (s *S3) Upload(ctx context.Context, key string, body io.Reader, tags map[string]string) error {
	key = strings.TrimPrefix(key, "/")

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if len(tags) > 0 {
		values := url.Values{}
		for k, v := range tags {
			values.Set(k, v)
		}
		input.Tagging = aws.String(values.Encode())
	}

	s3Manager := manager.NewUploader(s.cli)
	if _, err := s3Manager.Upload(ctx, input); err != nil {
		return fmt.Errorf("Failed to upload object %s: %w", key, err)
	}
	return nil
}

// Delete 删除对象
func (s *S3) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")

	_, err := s.cli.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	return err
}
