package storage

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultContentType = "application/octet-stream"
	DefaultLinkExpiry  = time.Hour
	// MaxLinkExpiry is the longest lifetime S3 accepts for a presigned URL.
	MaxLinkExpiry      = 7 * 24 * time.Hour

	// maxDeleteBatch is the most keys a single DeleteObjects call accepts.
	maxDeleteBatch = 1000
)

var (
	ErrNotFound    = errors.New("storage: object not found")
	ErrEmptyKey    = errors.New("storage: empty object key")
	ErrEmptyFolder = errors.New("storage: empty folder name")
)

// Object is the content of a stored object.
type Object struct {
	Content     []byte
	ContentType string
}

// ObjectInfo describes a stored object without its content.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// ObjectStore is a thin client over an S3-compatible object store.
type ObjectStore interface {
	CreateBucket(ctx context.Context, bucket string) error
	BucketExists(ctx context.Context, bucket string) (bool, error)
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PutFile(ctx context.Context, bucket, key, path string) error
	GetObject(ctx context.Context, bucket, key string) (*Object, error)
	DeleteObject(ctx context.Context, bucket, key string) error
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
	// DeleteFolder removes every object under folder. When the folder holds no
	// objects, its marker key ("folder/") is deleted instead.
	DeleteFolder(ctx context.Context, bucket, folder string) error
	GenerateDownloadLink(ctx context.Context, bucket, key string, expiresIn time.Duration) (string, error)
}
