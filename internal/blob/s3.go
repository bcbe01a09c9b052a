package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store implements Store on an S3-compatible backend (AWS S3 or
// MinIO). Single bucket; keys map to object keys directly.
type S3Store struct {
	client *s3.Client
	bucket string
	region string

	// Explicit endpoint base for constructing local-style URLs
	// (MinIO); empty for AWS.
	baseURL *url.URL
}

// S3Config holds explicit construction parameters (mostly for tests).
// Production deployments configure through the environment.
type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional; enables a custom endpoint (e.g. MinIO)
	PathStyle bool
}

// NewS3Store creates an S3 blob store from cfg.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	var base *url.URL
	if cfg.Endpoint != "" {
		if u, err := url.Parse(cfg.Endpoint); err == nil {
			base = u
		}
	}

	return &S3Store{client: client, bucket: cfg.Bucket, region: region, baseURL: base}, nil
}

// OpenS3FromEnv constructs an S3 store from process environment.
func OpenS3FromEnv(ctx context.Context) (*S3Store, error) {
	bucket := os.Getenv("HOMEDOC_BLOB_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("HOMEDOC_BLOB_S3_BUCKET required for s3 driver")
	}
	cfg := S3Config{
		Bucket:    bucket,
		Region:    os.Getenv("HOMEDOC_BLOB_S3_REGION"),
		Endpoint:  os.Getenv("HOMEDOC_BLOB_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("HOMEDOC_BLOB_S3_PATH_STYLE"), "true"),
	}
	return NewS3Store(ctx, cfg)
}

// Upload puts the object and returns its durable URL.
func (s *S3Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("uploading blob %s: %w", key, err)
	}
	return s.objectURL(key), nil
}

// Download fetches the object under key.
func (s *S3Store) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return nil, fmt.Errorf("downloading blob %s: %w", key, err)
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil {
			err = fmt.Errorf("closing object body: %w", closeErr)
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return data, nil
}

// objectURL builds the public-style URL for a key.
func (s *S3Store) objectURL(key string) string {
	if s.baseURL != nil {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.baseURL.String(), "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
