package storage

import (
	"context"
	"errors"
	"time"
)

type StubObjectStore struct {
	CreateBucketFunc         func(ctx context.Context, bucket string) error
	BucketExistsFunc         func(ctx context.Context, bucket string) (bool, error)
	PutObjectFunc            func(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PutFileFunc              func(ctx context.Context, bucket, key, path string) error
	GetObjectFunc            func(ctx context.Context, bucket, key string) (*Object, error)
	DeleteObjectFunc         func(ctx context.Context, bucket, key string) error
	ListObjectsFunc          func(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
	DeleteFolderFunc         func(ctx context.Context, bucket, folder string) error
	GenerateDownloadLinkFunc func(ctx context.Context, bucket, key string, expiresIn time.Duration) (string, error)
}

var _ ObjectStore = (*StubObjectStore)(nil)

func (s *StubObjectStore) CreateBucket(ctx context.Context, bucket string) error {
	if s.CreateBucketFunc == nil {
		return errors.New("CreateBucket() not implemented by stub")
	}
	return s.CreateBucketFunc(ctx, bucket)
}

func (s *StubObjectStore) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if s.BucketExistsFunc == nil {
		return false, errors.New("BucketExists() not implemented by stub")
	}
	return s.BucketExistsFunc(ctx, bucket)
}

func (s *StubObjectStore) PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	if s.PutObjectFunc == nil {
		return errors.New("PutObject() not implemented by stub")
	}
	return s.PutObjectFunc(ctx, bucket, key, data, contentType)
}

func (s *StubObjectStore) PutFile(ctx context.Context, bucket, key, path string) error {
	if s.PutFileFunc == nil {
		return errors.New("PutFile() not implemented by stub")
	}
	return s.PutFileFunc(ctx, bucket, key, path)
}

func (s *StubObjectStore) GetObject(ctx context.Context, bucket, key string) (*Object, error) {
	if s.GetObjectFunc == nil {
		return nil, errors.New("GetObject() not implemented by stub")
	}
	return s.GetObjectFunc(ctx, bucket, key)
}

func (s *StubObjectStore) DeleteObject(ctx context.Context, bucket, key string) error {
	if s.DeleteObjectFunc == nil {
		return errors.New("DeleteObject() not implemented by stub")
	}
	return s.DeleteObjectFunc(ctx, bucket, key)
}

func (s *StubObjectStore) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	if s.ListObjectsFunc == nil {
		return nil, errors.New("ListObjects() not implemented by stub")
	}
	return s.ListObjectsFunc(ctx, bucket, prefix)
}

func (s *StubObjectStore) DeleteFolder(ctx context.Context, bucket, folder string) error {
	if s.DeleteFolderFunc == nil {
		return errors.New("DeleteFolder() not implemented by stub")
	}
	return s.DeleteFolderFunc(ctx, bucket, folder)
}

func (s *StubObjectStore) GenerateDownloadLink(ctx context.Context, bucket, key string, expiresIn time.Duration) (string, error) {
	if s.GenerateDownloadLinkFunc == nil {
		return "", errors.New("GenerateDownloadLink() not implemented by stub")
	}
	return s.GenerateDownloadLinkFunc(ctx, bucket, key, expiresIn)
}
