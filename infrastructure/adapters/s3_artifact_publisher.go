package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/config"
	"github.com/Mulith/create-video-short/domain"
)

const (
	videoCollection   = "generated-videos"
	videoMediaType    = "video/mp4"
	videoCacheControl = "max-age=3600"
)

type s3ArtifactPublisher struct {
	s3Svc    s3iface.S3API
	s3Config *config.S3Config
	logger   outbound.LoggerPort
}

func NewS3ArtifactPublisher(s3Svc s3iface.S3API, s3Config *config.S3Config,
	logger outbound.LoggerPort) outbound.ArtifactPublisherPort {
	return &s3ArtifactPublisher{
		s3Svc:    s3Svc,
		s3Config: s3Config,
		logger:   logger,
	}
}

func (s *s3ArtifactPublisher) Publish(ctx context.Context, fileName string, video []byte) (string, error) {
	itemPath := fmt.Sprintf("%s/%s", videoCollection, fileName)

	// File names embed a millisecond timestamp, so a collision means a
	// duplicate run; refuse to overwrite.
	exists, err := s.objectExists(ctx, itemPath)
	if err != nil {
		return "", fmt.Errorf("%w: checking %s: %v", domain.ErrStorage, itemPath, err)
	}
	if exists {
		return "", fmt.Errorf("%w: object %s already exists", domain.ErrStorage, itemPath)
	}

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(itemPath),
		Body:          bytes.NewReader(video),
		ContentLength: aws.Int64(int64(len(video))),
		ContentType:   aws.String(videoMediaType),
		CacheControl:  aws.String(videoCacheControl),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.ErrorWithFields(err, "failed to upload video", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    itemPath,
		})
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.logger.InfoWithFields("video uploaded", map[string]interface{}{
		"bucket": s.s3Config.BucketName,
		"key":    itemPath,
		"bytes":  len(video),
	})

	return itemPath, nil
}

func (s *s3ArtifactPublisher) objectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.s3Svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	return false, err
}
