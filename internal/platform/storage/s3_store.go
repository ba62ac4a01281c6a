package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ferdiebergado/templat/internal/config"
)

type s3API interface {
	s3.ListObjectsV2APIClient
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store implements ObjectStore with the AWS SDK.
type S3Store struct {
	client    s3API
	presigner presigner
}

var _ ObjectStore = (*S3Store)(nil)

// NewS3Store builds a client for the endpoint in cfg using static credentials and path-style addressing.
func NewS3Store(ctx context.Context, cfg *config.Storage) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	slog.Info("Object store client created.", "endpoint", cfg.Endpoint, "region", cfg.Region)

	return newS3Store(client, s3.NewPresignClient(client)), nil
}

func newS3Store(client s3API, p presigner) *S3Store {
	return &S3Store{client: client, presigner: p}
}

func (s *S3Store) CreateBucket(ctx context.Context, bucket string) error {
	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *S3Store) BucketExists(ctx context.Context, bucket string) (bool, error) {
	out, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return false, fmt.Errorf("list buckets: %w", err)
	}

	return slices.ContainsFunc(out.Buckets, func(b types.Bucket) bool {
		return aws.ToString(b.Name) == bucket
	}), nil
}

func (s *S3Store) PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	if key == "" {
		return ErrEmptyKey
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PutFile uploads the file at path. The content type is guessed from the file extension.
func (s *S3Store) PutFile(ctx context.Context, bucket, key, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read file %s: %w", path, err)
	}

	return s.PutObject(ctx, bucket, key, data, mime.TypeByExtension(filepath.Ext(path)))
}

func (s *S3Store) GetObject(ctx context.Context, bucket, key string) (*Object, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, mapNotFound(err))
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", bucket, key, err)
	}

	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = DefaultContentType
	}

	return &Object{Content: content, ContentType: contentType}, nil
}

func (s *S3Store) DeleteObject(ctx context.Context, bucket, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *S3Store) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []ObjectInfo
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects %s/%s: %w", bucket, prefix, err)
		}

		for _, obj := range page.Contents {
			objects = append(objects, ObjectInfo{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				ETag:         strings.Trim(aws.ToString(obj.ETag), `"`),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return objects, nil
}

func (s *S3Store) DeleteFolder(ctx context.Context, bucket, folder string) error {
	if strings.Trim(folder, "/") == "" {
		return ErrEmptyFolder
	}

	prefix := folder
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	objects, err := s.ListObjects(ctx, bucket, prefix)
	if err != nil {
		return err
	}

	if len(objects) == 0 {
		return s.DeleteObject(ctx, bucket, prefix)
	}

	for batch := range slices.Chunk(objects, maxDeleteBatch) {
		ids := make([]types.ObjectIdentifier, 0, len(batch))
		for _, obj := range batch {
			ids = append(ids, types.ObjectIdentifier{Key: aws.String(obj.Key)})
		}

		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{
				Objects: ids,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return fmt.Errorf("delete objects under %s/%s: %w", bucket, prefix, err)
		}

		if len(out.Errors) > 0 {
			first := out.Errors[0]
			return fmt.Errorf("delete objects under %s/%s: %d failed, first %s: %s",
				bucket, prefix, len(out.Errors), aws.ToString(first.Key), aws.ToString(first.Message))
		}
	}

	slog.Info("Folder deleted.", "bucket", bucket, "folder", prefix, "objects", len(objects))
	return nil
}

// GenerateDownloadLink returns a presigned GET URL. An expiresIn <= 0 selects DefaultLinkExpiry.
func (s *S3Store) GenerateDownloadLink(ctx context.Context, bucket, key string, expiresIn time.Duration) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	if expiresIn <= 0 {
		expiresIn = DefaultLinkExpiry
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		return "", fmt.Errorf("presign get %s/%s: %w", bucket, key, err)
	}
	return req.URL, nil
}

func mapNotFound(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
