package storage

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient   *minio.Client
	PublicBaseURL string
}

func NewMinioStorage(minioClient *minio.Client, publicBaseURL string) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, file io.Reader, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return m.ObjectURL(bucketName, objectName), nil
}

func (m *minioStorage) ObjectURL(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", m.PublicBaseURL, bucketName, objectName)
}
