package storage

import (
	"context"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/striming/videos-ms-go/internal/port"
)

// MinioStorage is the BlobStore adapter over a single MinIO bucket. Each
// Open/OpenRange returns its own *minio.Object; nothing is shared between
// concurrent readers of the same key.
type MinioStorage struct {
	client minioClient
	bucket string
}

// compile-time check: *MinioStorage must satisfy port.BlobStore
var _ port.BlobStore = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client, bucket: bucket}, nil
}

func (s *MinioStorage) InitBucket(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", s.bucket)
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) Stat(ctx context.Context, key string) (port.BlobInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return port.BlobInfo{}, mapMinioErr(err)
	}
	return port.BlobInfo{
		SizeBytes:   info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *MinioStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

func (s *MinioStorage) OpenRange(ctx context.Context, key string, start, end int64) (io.ReadCloser, error) {
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(start, end); err != nil {
		return nil, mapMinioErr(err)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, opts)
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

func (s *MinioStorage) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	log.Printf("saving blob %q into bucket %q...", key, s.bucket)

	putOpts := minio.PutObjectOptions{}
	if contentType != "" {
		putOpts.ContentType = contentType
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, reader, size, putOpts); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) Remove(ctx context.Context, key string) error {
	log.Printf("removing blob %q from bucket %q...", key, s.bucket)

	return mapMinioErr(s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}))
}
