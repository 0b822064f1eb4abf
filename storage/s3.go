package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3 stores objects in an S3-compatible bucket. A custom endpoint with
// path-style addressing covers MinIO and other non-AWS stores.
type S3 struct {
	client   *s3.Client
	bucket   string
	baseURL  string
	maxBytes int64
}

type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// BaseURL is the public prefix objects are served from (bucket
	// website, CDN, or proxy).
	BaseURL  string
	MaxBytes int64
}

func NewS3(ctx context.Context, opts S3Options) (*S3, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3{
		client:   client,
		bucket:   opts.Bucket,
		baseURL:  strings.TrimSuffix(opts.BaseURL, "/"),
		maxBytes: opts.MaxBytes,
	}, nil
}

func (s *S3) Upload(ctx context.Context, data []byte, contentType string) (*Asset, error) {
	ext, err := checkUpload(data, contentType, s.maxBytes)
	if err != nil {
		return nil, err
	}

	key := "projects/" + uuid.New().String() + ext

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &Asset{
		URL: s.baseURL + "/" + key,
		Key: key,
	}, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	// S3 DeleteObject succeeds for absent keys, which matches the
	// already-absent semantics we want.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}
