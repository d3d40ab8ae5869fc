package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/striming/videos-ms-go/internal/usecase/streaming"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return streaming.ErrBlobNotFound
	case "NoSuchBucket":
		return streaming.ErrBucketNotFound
	default:
		// connection failures and everything else are fatal for the request
		return fmt.Errorf("%w: %v", streaming.ErrStoreUnavailable, err)
	}
}
