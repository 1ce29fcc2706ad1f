package contracts

import (
	"context"
	"io"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, file io.Reader, size int64) (string, error)
	ObjectURL(bucketName, objectName string) string
}
