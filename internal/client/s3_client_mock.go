package client

import (
	"context"
	"fmt"
	"io"
	"time"
)

// MockS3Client is a mock implementation of S3ClientInterface for testing
type MockS3Client struct {
	GenerateFileKeyFunc func(originalFilename string) string
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) error
	DeleteFileFunc      func(ctx context.Context, key string) error
	PresignDownloadFunc func(ctx context.Context, key, downloadFilename string, expires time.Duration) (string, error)
}

// NewMockS3Client creates a new mock S3 client with sensible defaults
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		GenerateFileKeyFunc: func(originalFilename string) string {
			return "attachments/2026/01/mock-key_" + originalFilename
		},
		UploadFileFunc: func(ctx context.Context, key string, file io.Reader, contentType string) error {
			return nil
		},
		DeleteFileFunc: func(ctx context.Context, key string) error {
			return nil
		},
		PresignDownloadFunc: func(ctx context.Context, key, downloadFilename string, expires time.Duration) (string, error) {
			return fmt.Sprintf("https://mock-s3.example.com/%s", key), nil
		},
	}
}

func (m *MockS3Client) GenerateFileKey(originalFilename string) string {
	return m.GenerateFileKeyFunc(originalFilename)
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) error {
	return m.UploadFileFunc(ctx, key, file, contentType)
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	return m.DeleteFileFunc(ctx, key)
}

func (m *MockS3Client) PresignDownload(ctx context.Context, key, downloadFilename string, expires time.Duration) (string, error) {
	return m.PresignDownloadFunc(ctx, key, downloadFilename, expires)
}

var _ S3ClientInterface = (*MockS3Client)(nil)
