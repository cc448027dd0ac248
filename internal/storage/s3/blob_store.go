package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type ClientConfig struct {
	Region       string
	Endpoint     string
	UsePathStyle bool
	// Bucket is probed by Healthy.
	Bucket string
}

// BlobStore maps a container to a bucket and a key to an object key.
type BlobStore struct {
	client *awss3.Client
	bucket string
}

func NewBlobStore(ctx context.Context, cfg ClientConfig) (*BlobStore, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &BlobStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *BlobStore) Download(ctx context.Context, container, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		var nsb *types.NoSuchBucket
		if errors.As(err, &nsk) || errors.As(err, &nsb) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object %s/%s: %w", container, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s/%s: %w", container, key, err)
	}
	return data, nil
}

func (s *BlobStore) Upload(ctx context.Context, container, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(container),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(storage.ContentTypeJSON),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", container, key, err)
	}
	return nil
}

func (s *BlobStore) Healthy(ctx context.Context) bool {
	_, err := s.client.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return err == nil
}

func (s *BlobStore) Close() error {
	return nil
}
